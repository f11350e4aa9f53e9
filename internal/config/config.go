package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"composectl/internal/errors"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultComposeCommand is the tool invoked when compose_command is unset.
const DefaultComposeCommand = "docker-compose"

// DockerSettings holds the docker namespace of the settings file.
type DockerSettings struct {
	ComposeFile            string   `yaml:"compose_file"`             // Base compose file (path or file:// URI)
	ComposeAdditionalFiles []string `yaml:"compose_additional_files"` // Additional compose files, appended after the base file
	ComposeBuild           *bool    `yaml:"compose_build"`            // Pass --build to up (default true)
	ComposeDetached        *bool    `yaml:"compose_detached"`         // Pass -d to up (default true)
	ComposeCommand         string   `yaml:"compose_command"`          // Tool to invoke, e.g. "docker compose"
}

// WorkspaceSettings lists the project folders the user works in.
type WorkspaceSettings struct {
	Folders []string `yaml:"folders"`
}

// LoggingSettings controls the log package.
type LoggingSettings struct {
	Debug bool   `yaml:"debug"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"`
}

// UISettings controls terminal output.
type UISettings struct {
	Theme string `yaml:"theme"` // Color theme for messages
}

// Config represents the settings file.
type Config struct {
	Docker    DockerSettings    `yaml:"docker"`
	Workspace WorkspaceSettings `yaml:"workspace"`
	Logging   LoggingSettings   `yaml:"logging"`
	UI        UISettings        `yaml:"ui"`
}

// DefaultPath returns composectl/config.yaml below the XDG config home
// (~/.config on Linux).
func DefaultPath() (string, error) {
	if xdg.ConfigHome == "" {
		return "", fmt.Errorf("cannot determine config directory")
	}
	return filepath.Join(xdg.ConfigHome, "composectl", "config.yaml"), nil
}

// LoadConfig loads configuration from DefaultPath.
func LoadConfig() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	cfg.Docker.ComposeFile = strings.TrimSpace(tempCfg.Docker.ComposeFile)
	if tempCfg.Docker.ComposeAdditionalFiles != nil {
		cfg.Docker.ComposeAdditionalFiles = tempCfg.Docker.ComposeAdditionalFiles
	}
	if tempCfg.Docker.ComposeBuild != nil {
		cfg.Docker.ComposeBuild = tempCfg.Docker.ComposeBuild
	}
	if tempCfg.Docker.ComposeDetached != nil {
		cfg.Docker.ComposeDetached = tempCfg.Docker.ComposeDetached
	}
	if strings.TrimSpace(tempCfg.Docker.ComposeCommand) != "" {
		cfg.Docker.ComposeCommand = strings.TrimSpace(tempCfg.Docker.ComposeCommand)
	}
	if len(tempCfg.Workspace.Folders) > 0 {
		cfg.Workspace.Folders = tempCfg.Workspace.Folders
	}
	cfg.Logging = tempCfg.Logging
	if theme := strings.TrimSpace(tempCfg.UI.Theme); theme != "" {
		cfg.UI.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError("invalid configuration", path, errors.InvalidConfig, err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Docker.ComposeFile = ""
	cfg.Docker.ComposeAdditionalFiles = []string{}
	cfg.Docker.ComposeBuild = boolPtr(true)
	cfg.Docker.ComposeDetached = boolPtr(true)
	cfg.Docker.ComposeCommand = DefaultComposeCommand

	cfg.Workspace.Folders = []string{}

	cfg.UI.Theme = "default"

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if strings.ContainsAny(c.Docker.ComposeCommand, "\r\n") {
		return fmt.Errorf("compose_command must be a single line")
	}
	if strings.ContainsAny(c.Docker.ComposeFile, "\r\n\"") {
		return fmt.Errorf("compose_file contains invalid characters: %q", c.Docker.ComposeFile)
	}

	for i, f := range c.Docker.ComposeAdditionalFiles {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("compose_additional_files %d: path cannot be empty", i)
		}
		if strings.ContainsAny(f, "\r\n\"") {
			return fmt.Errorf("compose_additional_files %d: invalid characters in %q", i, f)
		}
	}

	for i, dir := range c.Workspace.Folders {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("workspace folder %d: path cannot be empty", i)
		}
	}

	return nil
}

// New returns a configuration holding the default values.
func New() *Config {
	return defaultConfig()
}

func boolPtr(b bool) *bool {
	return &b
}
