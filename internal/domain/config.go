package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Defaults     map[string]string `toml:"defaults"` // Operator defaults from [defaults]
	Warnings     []string          `toml:"-"`
	DefaultsFile string            `toml:"defaults_file,omitempty"` // Override file path
	Prompt       PromptConfig      `toml:"prompt"`
	Command      CommandConfig     `toml:"command"`
	Log          LogConfig         `toml:"log"`
	Output       OutputConfig      `toml:"output"`
}

// PromptConfig holds prompt rendering settings from [prompt] section.
type PromptConfig struct {
	Banner    string `toml:"banner,omitempty"`     // Printed before every question
	Separator string `toml:"separator,omitempty"`  // Printed between question and input
	Mode      string `toml:"mode,omitempty"`       // "auto" (default), "line" or "tui"
	Accent    string `toml:"accent,omitempty"`     // Color of banner and messages
	Muted     string `toml:"muted,omitempty"`      // Color of defaults
	MaxPasses int    `toml:"max_passes,omitempty"` // 0 = unlimited restarts
}

// CommandConfig holds external command settings from [command] section.
type CommandConfig struct {
	Timeout string `toml:"timeout,omitempty"` // Go duration, empty = no timeout
}

// TimeoutDuration parses Timeout. An empty value means no timeout.
func (c CommandConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse command timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Empty disables logging
}

// OutputConfig holds answer output settings from [output] section.
type OutputConfig struct {
	Format string `toml:"format,omitempty"` // toml, yaml or json
}

// Prompt modes.
const (
	PromptModeAuto = "auto"
	PromptModeLine = "line"
	PromptModeTUI  = "tui"
)

// Output formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Default configuration values.
const (
	DefaultBanner    = "?"
	DefaultSeparator = ": "
	DefaultAccent    = "#7C3AED" // Purple
	DefaultMuted     = "#9CA3AF" // Light gray
	DefaultLogLevel  = "info"
)

// File and directory names.
const (
	AppDirName            = "git-scaffold"   // Directory under the config home
	ConfigFileName        = "config.toml"    // Global config file name
	ProjectConfigFileName = ".scaffold.toml" // Config file name in the project directory
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ProjectConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Defaults: make(map[string]string),
		Prompt: PromptConfig{
			Banner:    DefaultBanner,
			Separator: DefaultSeparator,
			Mode:      PromptModeAuto,
			Accent:    DefaultAccent,
			Muted:     DefaultMuted,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Output: OutputConfig{
			Format: FormatTOML,
		},
	}
}

// configTemplateData holds the values substituted into the config template.
type configTemplateData struct {
	Banner    string
	Separator string
	Mode      string
	Accent    string
	Muted     string
	LogLevel  string
	Format    string
}

// RenderConfigTemplate returns a commented config file for cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	data := configTemplateData{
		Banner:    cfg.Prompt.Banner,
		Separator: cfg.Prompt.Separator,
		Mode:      cfg.Prompt.Mode,
		Accent:    cfg.Prompt.Accent,
		Muted:     cfg.Prompt.Muted,
		LogLevel:  cfg.Log.Level,
		Format:    cfg.Output.Format,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
