// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"errors"
	"strings"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// ErrNoMoreInput is returned by MockPrompter when its scripted inputs run out.
var ErrNoMoreInput = errors.New("no more scripted input")

// MockPrompter is a test double for domain.Prompter.
// It replays scripted inputs and records everything shown to the user.
// Fields are ordered to minimize memory padding.
type MockPrompter struct {
	AskErr    error
	Inputs    []string
	Questions []domain.Question
	Warnings  []string
	Summaries []*domain.Answers
	Events    []string // "ask:<name>", "warn:<name>", "summary" in call order
	current   string
}

// NewMockPrompter creates a MockPrompter that answers with inputs in order.
func NewMockPrompter(inputs ...string) *MockPrompter {
	return &MockPrompter{Inputs: inputs}
}

// Ask records q and returns the next scripted input.
func (m *MockPrompter) Ask(_ context.Context, q domain.Question) (string, error) {
	m.Questions = append(m.Questions, q)
	m.Events = append(m.Events, "ask:"+q.Name)
	m.current = q.Name
	if m.AskErr != nil {
		return "", m.AskErr
	}
	if len(m.Inputs) == 0 {
		return "", ErrNoMoreInput
	}
	in := m.Inputs[0]
	m.Inputs = m.Inputs[1:]
	return in, nil
}

// Warn records a validation warning.
func (m *MockPrompter) Warn(_ context.Context, message string) error {
	m.Warnings = append(m.Warnings, message)
	m.Events = append(m.Events, "warn:"+m.current)
	return nil
}

// Summary records the answers shown before confirmation.
func (m *MockPrompter) Summary(_ context.Context, answers *domain.Answers) error {
	m.Summaries = append(m.Summaries, answers.Clone())
	m.Events = append(m.Events, "summary")
	return nil
}

// AskedNames returns the names of all questions asked, in order.
func (m *MockPrompter) AskedNames() []string {
	names := make([]string, len(m.Questions))
	for i, q := range m.Questions {
		names[i] = q.Name
	}
	return names
}

// MockCommandRunner is a test double for domain.CommandRunner.
// Outputs and Errors are keyed by "program arg1 arg2".
// Fields are ordered to minimize memory padding.
type MockCommandRunner struct {
	Outputs map[string]string
	Errors  map[string]error
	Calls   []*domain.ExecCommand
}

// NewMockCommandRunner creates a new MockCommandRunner with initialized maps.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// CommandKey returns the lookup key used for cmd.
func CommandKey(cmd *domain.ExecCommand) string {
	return strings.TrimSpace(cmd.Program + " " + strings.Join(cmd.Args, " "))
}

// Run returns the configured output. A configured error is replaced by the
// command's fallback when it has one, mirroring the real runner.
func (m *MockCommandRunner) Run(_ context.Context, cmd *domain.ExecCommand) (string, error) {
	m.Calls = append(m.Calls, cmd)
	key := CommandKey(cmd)
	if err, ok := m.Errors[key]; ok {
		if cmd.Fallback != nil {
			return *cmd.Fallback, nil
		}
		return "", err
	}
	if out, ok := m.Outputs[key]; ok {
		return out, nil
	}
	if cmd.Fallback != nil {
		return *cmd.Fallback, nil
	}
	return "", &domain.CommandError{Program: cmd.Program, Args: cmd.Args, ExitCode: 127, Stderr: "command not mocked"}
}

// MockRepoInspector is a test double for domain.RepoInspector.
type MockRepoInspector struct {
	Remotes   map[string]string
	User      string
	RemoteErr error
	UserErr   error
}

// RemoteURL returns the configured remote URL.
func (m *MockRepoInspector) RemoteURL(_, remote string) (string, error) {
	if m.RemoteErr != nil {
		return "", m.RemoteErr
	}
	url, ok := m.Remotes[remote]
	if !ok {
		return "", domain.ErrRemoteNotFound
	}
	return url, nil
}

// UserName returns the configured user name.
func (m *MockRepoInspector) UserName(_ string) (string, error) {
	if m.UserErr != nil {
		return "", m.UserErr
	}
	if m.User == "" {
		return "", domain.ErrNoIdentity
	}
	return m.User, nil
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "debug", Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "info", Category: category, Msg: msg})
}

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "warn", Category: category, Msg: msg})
}

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "error", Category: category, Msg: msg})
}

// Levels returns the entries recorded at level.
func (m *MockLogger) Levels(level string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	InitConfig        *domain.Config // Config passed to the last Init call
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig(cfg *domain.Config) error {
	m.InitProjectCalled = true
	m.InitConfig = cfg
	return m.InitProjectErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}
