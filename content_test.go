package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultContent(t *testing.T) {
	c, err := LoadContent("")
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if c.Profile.Name == "" || c.Profile.Handle == "" {
		t.Errorf("profile = %+v", c.Profile)
	}
	if len(c.Projects) != 4 {
		t.Errorf("got %d projects, want 4", len(c.Projects))
	}
	if len(c.Experience) == 0 || len(c.Education) == 0 || len(c.Certifications) == 0 {
		t.Error("default content is missing a section")
	}
	if c.Terminal.Script == "" || len(c.Terminal.Output) == 0 {
		t.Errorf("terminal = %+v", c.Terminal)
	}
	if got := c.prompt(); got != c.Profile.Handle+"@portfolio:~$ " {
		t.Errorf("prompt = %q", got)
	}
}

func TestLoadContentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	os.WriteFile(path, []byte("profile:\n  name: Ada\n  handle: ada\nprojects: []\n"), 0o600)

	c, err := LoadContent(path)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if c.Profile.Name != "Ada" || len(c.Projects) != 0 {
		t.Errorf("content = %+v", c)
	}

	os.WriteFile(path, []byte("about:\n  - no name here\n"), 0o600)
	if _, err := LoadContent(path); err == nil {
		t.Error("content without a profile name was accepted")
	}

	if _, err := LoadContent(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing content file was accepted")
	}
}
