package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/git-scaffold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, nil, "config")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Available Commands:")
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "template")
	assert.Contains(t, stdout, "init")
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t)
	env.writeProjectConfig(t, "[prompt]\nbanner = \">>\"\n\n[defaults]\nlicense = \"ISC\"\n")

	stdout, _, err := env.run(t, nil, "config", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, filepath.Join(env.globalDir, "config.toml")+" (not found)")
	assert.Contains(t, stdout, "- "+filepath.Join(env.projectDir, ".scaffold.toml")+"\n")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Regexp(t, `banner = ['"]>>['"]`, stdout)
	assert.Regexp(t, `license = ['"]ISC['"]`, stdout)
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeProjectConfig(t, "[prompt\n")

	_, _, err := env.run(t, nil, "config", "show")

	assert.Error(t, err)
}

func TestConfigTemplate(t *testing.T) {
	env := newTestEnv(t)
	env.writeProjectConfig(t, "[prompt\n")

	stdout, _, err := env.run(t, nil, "config", "template")
	require.NoError(t, err, "template ignores broken config files")

	assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), stdout)
}

func TestConfigInit(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.projectDir, ".scaffold.toml")

	stdout, _, err := env.run(t, nil, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Created config file: "+path+"\n", stdout)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[prompt]")

	_, _, err = env.run(t, nil, "config", "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigInit_Global(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, nil, "config", "init", "--global")
	require.NoError(t, err)

	path := filepath.Join(env.globalDir, "config.toml")
	assert.Equal(t, "Created config file: "+path+"\n", stdout)
	assert.FileExists(t, path)
}
