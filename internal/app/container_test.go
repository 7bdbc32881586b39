package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/git-scaffold/internal/domain"
	"github.com/runoshun/git-scaffold/internal/infra/executor"
	"github.com/runoshun/git-scaffold/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	c, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, c.Config.WorkDir)
	assert.NotNil(t, c.ConfigLoader)
	assert.NotNil(t, c.ConfigManager)
	assert.NotNil(t, c.Repo)
	assert.Nil(t, c.Commands)
	assert.IsType(t, domain.NopLogger{}, c.Logger)
}

func TestContainer_CommandRunner(t *testing.T) {
	t.Run("builds executor from config", func(t *testing.T) {
		c := NewWithDeps(Config{}, nil, nil, nil, nil, nil)
		cfg := domain.NewDefaultConfig()
		cfg.Command.Timeout = "5s"

		runner, err := c.CommandRunner(cfg)
		require.NoError(t, err)
		assert.IsType(t, &executor.Client{}, runner)

		again, err := c.CommandRunner(cfg)
		require.NoError(t, err)
		assert.Same(t, runner, again)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		c := NewWithDeps(Config{}, nil, nil, nil, nil, nil)
		cfg := domain.NewDefaultConfig()
		cfg.Command.Timeout = "soon"

		_, err := c.CommandRunner(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse command timeout")
	})

	t.Run("injected runner wins", func(t *testing.T) {
		runner := testutil.NewMockCommandRunner()
		c := NewWithDeps(Config{}, nil, nil, runner, nil, nil)

		got, err := c.CommandRunner(domain.NewDefaultConfig())
		require.NoError(t, err)
		assert.Same(t, runner, got)
	})
}

func TestContainer_Catalog(t *testing.T) {
	runner := testutil.NewMockCommandRunner()
	repo := &testutil.MockRepoInspector{}
	c := NewWithDeps(Config{}, nil, nil, runner, repo, nil)

	catalog, err := c.Catalog(domain.NewDefaultConfig(), "/work/widget")
	require.NoError(t, err)

	name, ok := catalog.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "widget", name.Default.Value())
}

func TestContainer_Overrides(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "defaults.yaml")
	require.NoError(t, os.WriteFile(file, []byte("license: Apache-2.0\nauthor: Jo\n"), 0o644))

	cfg := domain.NewDefaultConfig()
	cfg.Defaults = map[string]string{"license": "MIT", "version": "2.0.0"}

	t.Run("config only", func(t *testing.T) {
		c := NewWithDeps(Config{}, nil, nil, nil, nil, nil)

		got, err := c.Overrides(cfg, "")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"license": "MIT", "version": "2.0.0"}, got)
	})

	t.Run("file on top of config", func(t *testing.T) {
		logger := testutil.NewMockLogger()
		c := NewWithDeps(Config{}, nil, nil, nil, nil, logger)

		got, err := c.Overrides(cfg, file)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"license": "Apache-2.0", "version": "2.0.0", "author": "Jo"}, got)
		require.Len(t, logger.Levels("debug"), 1)
		assert.True(t, strings.HasPrefix(logger.Levels("debug")[0].Msg, "loaded 2 override(s)"))
	})

	t.Run("defaults_file from config", func(t *testing.T) {
		c := NewWithDeps(Config{}, nil, nil, nil, nil, nil)
		withFile := *cfg
		withFile.DefaultsFile = file

		got, err := c.Overrides(&withFile, "")
		require.NoError(t, err)
		assert.Equal(t, "Jo", got["author"])
	})

	t.Run("missing file", func(t *testing.T) {
		c := NewWithDeps(Config{}, nil, nil, nil, nil, nil)

		_, err := c.Overrides(cfg, filepath.Join(dir, "missing.toml"))
		assert.Error(t, err)
	})
}

func TestContainer_OpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scaffold.log")
	c := NewWithDeps(Config{}, nil, nil, nil, nil, nil)
	cfg := domain.NewDefaultConfig()

	c.OpenLog(cfg, path)
	c.Logger.Info("session", "hello")
	require.NoError(t, c.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [session] hello")
}

func TestContainer_OpenLogDisabled(t *testing.T) {
	c := NewWithDeps(Config{}, nil, nil, nil, nil, nil)

	c.OpenLog(domain.NewDefaultConfig(), "")

	assert.IsType(t, domain.NopLogger{}, c.Logger)
	assert.NoError(t, c.Close())
}
