package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// errNoGlobalDir is returned when no config home could be determined.
var errNoGlobalDir = errors.New("global config directory not available")

// Manager creates and describes the project and global config files.
type Manager struct {
	projectPath string // .scaffold.toml in the project directory
	globalPath  string // Empty when no config home is known
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return NewManagerWithGlobalDir(projectDir, defaultGlobalConfigDir())
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	m := &Manager{projectPath: domain.ProjectConfigPath(projectDir)}
	if globalConfDir != "" {
		m.globalPath = filepath.Join(globalConfDir, domain.ConfigFileName)
	}
	return m
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return describe(m.projectPath)
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalPath == "" {
		return domain.ConfigInfo{}
	}
	return describe(m.globalPath)
}

// InitProjectConfig writes the config template to the project directory.
func (m *Manager) InitProjectConfig(cfg *domain.Config) error {
	return create(m.projectPath, cfg)
}

// InitGlobalConfig writes the config template to the global config directory,
// creating the directory when needed.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalPath == "" {
		return errNoGlobalDir
	}
	if err := os.MkdirAll(filepath.Dir(m.globalPath), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return create(m.globalPath, cfg)
}

func describe(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// create writes the rendered template to a new file. An existing file is
// left untouched and reported as domain.ErrConfigExists.
func create(path string, cfg *domain.Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return domain.ErrConfigExists
	}
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}

	if _, err := f.WriteString(domain.RenderConfigTemplate(cfg)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config file: %w", err)
	}
	return f.Close()
}
