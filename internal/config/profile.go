package config

// This file merges the two optional config sources below the flag layer:
// a YAML site profile (observatory defaults that rarely change between runs)
// and the environment (.env aware) for credentials.
// Precedence: flag > env > profile > default.

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Profile carries per-site defaults loaded from a YAML file. Only fields the
// user left unset on the command line are taken from the profile.
type Profile struct {
	Group    string `yaml:"group"`
	TelSize  string `yaml:"telsize"`
	Camera   string `yaml:"camera"`
	Coverage string `yaml:"coverage"`
	Notes    string `yaml:"notes"`
}

// ApplyProfile loads the YAML profile at c.ProfilePath (no-op when empty)
// and fills in any settings still unset after flag parsing.
func (c *Config) ApplyProfile() error {
	if c.ProfilePath == "" {
		return nil
	}
	data, err := os.ReadFile(c.ProfilePath)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parse profile %s: %w", c.ProfilePath, err)
	}

	if c.Group == "" || c.Group == DefaultConfig().Group {
		if p.Group != "" {
			c.Group = p.Group
		}
	}
	if c.TelSize == "" {
		c.TelSize = p.TelSize
	}
	if c.Camera == "" {
		c.Camera = p.Camera
	}
	if c.Coverage == "" {
		c.Coverage = p.Coverage
	}
	if c.Notes == "" {
		c.Notes = p.Notes
	}
	return nil
}

// ApplyEnv fills missing credentials from the environment. A .env file in the
// working directory is honored when present; a missing file is not an error.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()
	if c.Username == "" {
		c.Username = os.Getenv("EXOFOP_USERNAME")
	}
	if c.Password == "" {
		c.Password = os.Getenv("EXOFOP_PASSWORD")
	}
}
