package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/git-scaffold/internal/app"
	"github.com/runoshun/git-scaffold/internal/infra/config"
	"github.com/runoshun/git-scaffold/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv is a container over temporary directories with mocked git access.
type testEnv struct {
	container  *app.Container
	runner     *testutil.MockCommandRunner
	repo       *testutil.MockRepoInspector
	projectDir string
	globalDir  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	projectDir := filepath.Join(t.TempDir(), "widget")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))
	globalDir := filepath.Join(t.TempDir(), "git-scaffold")

	runner := testutil.NewMockCommandRunner()
	repo := &testutil.MockRepoInspector{Remotes: map[string]string{}}
	c := app.NewWithDeps(
		app.Config{WorkDir: projectDir},
		config.NewLoaderWithGlobalDir(projectDir, globalDir),
		config.NewManagerWithGlobalDir(projectDir, globalDir),
		runner,
		repo,
		nil,
	)

	return &testEnv{
		container:  c,
		runner:     runner,
		repo:       repo,
		projectDir: projectDir,
		globalDir:  globalDir,
	}
}

// run executes the root command with args, feeding input lines to stdin.
func (e *testEnv) run(t *testing.T, input []string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	root := NewRootCommand(e.container, "test")
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetIn(strings.NewReader(lines(input...)))
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func (e *testEnv) writeProjectConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(e.projectDir, ".scaffold.toml"), []byte(content), 0o644))
}

func lines(in ...string) string {
	if len(in) == 0 {
		return ""
	}
	return strings.Join(in, "\n") + "\n"
}

// acceptAll returns one empty answer per builtin field followed by a confirmation.
func acceptAll() []string {
	return append(make([]string, 11), "y")
}
