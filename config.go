package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Endpoint is the base URL of the mail endpoint the TUI posts to.
	Endpoint    string `koanf:"endpoint"`
	ContentPath string `koanf:"content"`
	Debug       bool   `koanf:"debug"`
	LogFile     string `koanf:"log_file"`

	CharDelay   time.Duration `koanf:"char_delay"`
	OutputDelay time.Duration `koanf:"output_delay"`

	Port       string `koanf:"port"`
	DBPath     string `koanf:"db_path"`
	ResumePath string `koanf:"resume"`

	SMTPHost string `koanf:"smtp_host"`
	SMTPPort string `koanf:"smtp_port"`
	SMTPUser string `koanf:"smtp_user"`
	SMTPPass string `koanf:"smtp_pass"`
	ToEmail  string `koanf:"to_email"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	// RetentionDays bounds how long visitor records are kept.
	RetentionDays int `koanf:"retention_days"`
}

func DefaultConfig() *Config {
	return &Config{
		Endpoint:      "http://localhost:8080",
		LogFile:       "devfolio.log",
		CharDelay:     defaultCharDelay,
		OutputDelay:   defaultOutputDelay,
		Port:          "8080",
		DBPath:        "devfolio.db",
		ResumePath:    "resume.pdf",
		SMTPHost:      "smtp.gmail.com",
		SMTPPort:      "587",
		RetentionDays: 365,
	}
}

// legacyEnv maps the unprefixed variables the site has always read.
var legacyEnv = map[string]string{
	"PORT":           "port",
	"SMTP_HOST":      "smtp_host",
	"SMTP_PORT":      "smtp_port",
	"SMTP_USER":      "smtp_user",
	"SMTP_PASS":      "smtp_pass",
	"TO_EMAIL":       "to_email",
	"ADMIN_USERNAME": "admin_username",
	"ADMIN_PASSWORD": "admin_password",
}

// LoadConfig layers defaults, the optional YAML file at path, the legacy
// variables and finally DEVFOLIO_* overrides.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return legacyEnv[key], value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading legacy env: %w", err)
	}

	if err := k.Load(env.ProviderWithValue("DEVFOLIO_", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, "DEVFOLIO_")), value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: must be an http(s) URL", c.Endpoint)
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if c.CharDelay <= 0 {
		return fmt.Errorf("char_delay must be positive")
	}
	if c.OutputDelay <= 0 {
		return fmt.Errorf("output_delay must be positive")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be non-negative")
	}
	return nil
}

// MailerEnabled reports whether SMTP credentials are configured.
func (c *Config) MailerEnabled() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}
