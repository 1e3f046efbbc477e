package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type Social struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type Profile struct {
	Name     string   `yaml:"name" json:"name"`
	Handle   string   `yaml:"handle" json:"handle"`
	Title    string   `yaml:"title" json:"title"`
	Badge    string   `yaml:"badge" json:"badge"`
	Headline string   `yaml:"headline" json:"headline"`
	Bio      string   `yaml:"bio" json:"bio"`
	Email    string   `yaml:"email" json:"email"`
	Phone    string   `yaml:"phone" json:"phone,omitempty"`
	Location string   `yaml:"location" json:"location"`
	Social   []Social `yaml:"social" json:"social"`
}

type Terminal struct {
	Script string   `yaml:"script"`
	Output []string `yaml:"output"`
}

type Project struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
	GithubURL   string   `yaml:"github_url" json:"github_url"`
	LiveURL     string   `yaml:"live_url" json:"live_url,omitempty"`
}

type SkillGroup struct {
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Items       []string `yaml:"items"`
}

type Job struct {
	Position string   `yaml:"position"`
	Company  string   `yaml:"company"`
	Period   string   `yaml:"period"`
	Details  []string `yaml:"details"`
}

type School struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Period      string `yaml:"period"`
	Details     string `yaml:"details"`
}

type Certification struct {
	Name   string `yaml:"name"`
	Issuer string `yaml:"issuer"`
	Date   string `yaml:"date"`
	Link   string `yaml:"link"`
}

// Content holds the static tables rendered by the page. It is read once at
// startup and never mutated.
type Content struct {
	Profile        Profile         `yaml:"profile"`
	About          []string        `yaml:"about"`
	Terminal       Terminal        `yaml:"terminal"`
	Projects       []Project       `yaml:"projects"`
	Skills         []SkillGroup    `yaml:"skills"`
	Experience     []Job           `yaml:"experience"`
	Education      []School        `yaml:"education"`
	Certifications []Certification `yaml:"certifications"`
}

// LoadContent decodes the content file at path, or the built-in content
// when path is empty.
func LoadContent(path string) (*Content, error) {
	data := defaultContent
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading content %s: %w", path, err)
		}
	}
	return parseContent(data)
}

func parseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if c.Profile.Name == "" {
		return nil, fmt.Errorf("parsing content: profile.name is required")
	}
	return &c, nil
}

// prompt is the shell prompt shown in the home terminal.
func (c *Content) prompt() string {
	handle := c.Profile.Handle
	if handle == "" {
		handle = "guest"
	}
	return handle + "@portfolio:~$ "
}
