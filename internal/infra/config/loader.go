// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/git-scaffold/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .scaffold.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/git-scaffold)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (global + project).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global, l.globalConfDir)
	}
	if project != nil {
		base = mergeConfigs(base, project, l.projectDir)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{
		Defaults: make(map[string]string),
	}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "defaults_file":
			if s, ok := value.(string); ok {
				res.DefaultsFile = s
			}
		case "defaults":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					s, err := scalarString(v)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid value in [defaults]: %s", k))
						continue
					}
					res.Defaults[k] = s
				}
			}
		case "prompt":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "banner":
						if s, ok := v.(string); ok {
							res.Prompt.Banner = s
						}
					case "separator":
						if s, ok := v.(string); ok {
							res.Prompt.Separator = s
						}
					case "mode":
						if s, ok := v.(string); ok {
							res.Prompt.Mode = s
						}
					case "accent":
						if s, ok := v.(string); ok {
							res.Prompt.Accent = s
						}
					case "muted":
						if s, ok := v.(string); ok {
							res.Prompt.Muted = s
						}
					case "max_passes":
						if n, ok := v.(int64); ok {
							res.Prompt.MaxPasses = int(n)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [prompt]: %s", k))
					}
				}
			}
		case "command":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "timeout":
						if s, ok := v.(string); ok {
							res.Command.Timeout = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [command]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					case "file":
						if s, ok := v.(string); ok {
							res.Log.File = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "output":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "format":
						if s, ok := v.(string); ok {
							res.Output.Format = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [output]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
// A relative defaults_file is resolved against dir, the directory override came from.
func mergeConfigs(base, override *domain.Config, dir string) *domain.Config {
	result := &domain.Config{
		Defaults:     make(map[string]string, len(base.Defaults)+len(override.Defaults)),
		DefaultsFile: base.DefaultsFile,
		Prompt:       base.Prompt,
		Command:      base.Command,
		Log:          base.Log,
		Output:       base.Output,
		Warnings:     append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	for k, v := range base.Defaults {
		result.Defaults[k] = v
	}
	for k, v := range override.Defaults {
		result.Defaults[k] = v
	}

	if override.DefaultsFile != "" {
		result.DefaultsFile = resolvePath(override.DefaultsFile, dir)
	}
	if override.Prompt.Banner != "" {
		result.Prompt.Banner = override.Prompt.Banner
	}
	if override.Prompt.Separator != "" {
		result.Prompt.Separator = override.Prompt.Separator
	}
	if override.Prompt.Mode != "" {
		result.Prompt.Mode = override.Prompt.Mode
	}
	if override.Prompt.Accent != "" {
		result.Prompt.Accent = override.Prompt.Accent
	}
	if override.Prompt.Muted != "" {
		result.Prompt.Muted = override.Prompt.Muted
	}
	if override.Prompt.MaxPasses != 0 {
		result.Prompt.MaxPasses = override.Prompt.MaxPasses
	}
	if override.Command.Timeout != "" {
		result.Command.Timeout = override.Command.Timeout
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}
	if override.Output.Format != "" {
		result.Output.Format = override.Output.Format
	}

	return result
}

// resolvePath expands a leading ~ and makes relative paths absolute against dir.
func resolvePath(path, dir string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return path
}
