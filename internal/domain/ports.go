package domain

import "context"

// CommandRunner runs external commands.
type CommandRunner interface {
	// Run executes cmd and returns its trimmed stdout.
	// When cmd fails and has a fallback, the fallback is returned with a nil error.
	// Otherwise the error is a *CommandError.
	Run(ctx context.Context, cmd *ExecCommand) (string, error)
}

// Question is a single prompt shown to the user.
type Question struct {
	Name    string // Field name
	Message string // Prompt text
	Default string // Effective default, accepted on empty input
}

// Prompter owns the interactive input device for one session.
type Prompter interface {
	// Ask displays q and returns the raw input. Empty input means the default.
	Ask(ctx context.Context, q Question) (string, error)

	// Warn shows a validation warning for the field being asked.
	Warn(ctx context.Context, message string) error

	// Summary shows the answers collected in the current pass.
	Summary(ctx context.Context, answers *Answers) error
}

// RepoInspector reads metadata of the repository a project lives in.
type RepoInspector interface {
	// RemoteURL returns the URL of the named remote.
	RemoteURL(dir, remote string) (string, error)

	// UserName returns the configured committer name.
	UserName(dir string) (string, error)
}

// Logger writes diagnostic entries grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all entries.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(string, string) {}

// Info implements Logger.
func (NopLogger) Info(string, string) {}

// Warn implements Logger.
func (NopLogger) Warn(string, string) {}

// Error implements Logger.
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (global + project).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig creates the project config file rendered from cfg.
	InitProjectConfig(cfg *Config) error

	// InitGlobalConfig creates the global config file rendered from cfg.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
