// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/git-scaffold/internal/domain"
	"github.com/runoshun/git-scaffold/internal/infra/builtin"
	"github.com/runoshun/git-scaffold/internal/infra/config"
	"github.com/runoshun/git-scaffold/internal/infra/executor"
	"github.com/runoshun/git-scaffold/internal/infra/git"
	"github.com/runoshun/git-scaffold/internal/infra/logging"
	"github.com/runoshun/git-scaffold/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the command was started in
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Commands      domain.CommandRunner // Nil until built from the loaded config
	Repo          domain.RepoInspector
	Logger        domain.Logger

	// Pointer fields
	logFile *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container rooted at dir.
// Unlike most commands, nothing here requires dir to be a git repository.
func New(dir string) (*Container, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	return &Container{
		ConfigLoader:  config.NewLoader(abs),
		ConfigManager: config.NewManager(abs),
		Repo:          git.NewClient(),
		Logger:        domain.NopLogger{},
		Config:        Config{WorkDir: abs},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, loader domain.ConfigLoader, manager domain.ConfigManager, commands domain.CommandRunner, repo domain.RepoInspector, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		ConfigLoader:  loader,
		ConfigManager: manager,
		Commands:      commands,
		Repo:          repo,
		Logger:        logger,
		Config:        cfg,
	}
}

// OpenLog replaces the logger with a file logger configured by cfg.
// path overrides cfg.Log.File when set. It is a no-op when neither is set.
func (c *Container) OpenLog(cfg *domain.Config, path string) {
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		return
	}
	c.logFile = logging.New(path, logging.ParseLevel(cfg.Log.Level))
	c.Logger = c.logFile
}

// Close releases the log file, if one was opened.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// CommandRunner returns the command runner, building it from cfg on first use.
func (c *Container) CommandRunner(cfg *domain.Config) (domain.CommandRunner, error) {
	if c.Commands != nil {
		return c.Commands, nil
	}
	timeout, err := cfg.Command.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	c.Commands = executor.NewClient(c.Logger, timeout)
	return c.Commands, nil
}

// Catalog returns the builtin field catalog for a project in dir.
func (c *Container) Catalog(cfg *domain.Config, dir string) (*domain.Catalog, error) {
	runner, err := c.CommandRunner(cfg)
	if err != nil {
		return nil, err
	}
	return builtin.Catalog(builtin.Deps{
		Runner: runner,
		Repo:   c.Repo,
		Dir:    dir,
	})
}

// Overrides returns the operator defaults: [defaults] from cfg, with the
// override file on top. file takes the place of cfg.DefaultsFile when set.
func (c *Container) Overrides(cfg *domain.Config, file string) (map[string]string, error) {
	if file == "" {
		file = cfg.DefaultsFile
	}
	if file == "" {
		return config.MergeOverrides(cfg.Defaults, nil), nil
	}

	fromFile, err := config.LoadOverrides(file)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("config", fmt.Sprintf("loaded %d override(s) from %s", len(fromFile), file))
	return config.MergeOverrides(cfg.Defaults, fromFile), nil
}

// UseCase factory methods

// CollectAnswersUseCase returns a new CollectAnswers use case asking through prompter.
func (c *Container) CollectAnswersUseCase(prompter domain.Prompter) *usecase.CollectAnswers {
	return usecase.NewCollectAnswers(prompter, c.Logger)
}

// ListFieldsUseCase returns a new ListFields use case.
func (c *Container) ListFieldsUseCase() *usecase.ListFields {
	return usecase.NewListFields()
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
