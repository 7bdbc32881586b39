package domain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Static(t *testing.T) {
	d := StaticDefault("0.1.0")

	assert.False(t, d.IsDynamic())
	assert.Equal(t, "0.1.0", d.Value())
	assert.Nil(t, d.Resolver())
	assert.Equal(t, `"0.1.0"`, d.String())
}

func TestDefault_ZeroValueIsStaticEmpty(t *testing.T) {
	var d Default

	assert.False(t, d.IsDynamic())
	assert.Equal(t, "", d.Value())
}

func TestDefault_Dynamic(t *testing.T) {
	d := DynamicDefault(func(_ context.Context, answers *Answers) (string, error) {
		return answers.Value("name") + ".js", nil
	})

	require.True(t, d.IsDynamic())
	assert.Equal(t, "", d.Value())
	assert.Equal(t, "(dynamic)", d.String())

	answers := NewAnswers()
	answers.Set("name", "proj")
	got, err := d.Resolver()(context.Background(), answers)
	require.NoError(t, err)
	assert.Equal(t, "proj.js", got)
}

func TestPatternValidator(t *testing.T) {
	v := MatchPattern(`^[\w\-]+$`)

	assert.True(t, v.Validate("my-project_1"))
	assert.False(t, v.Validate("bad name!"))
	assert.False(t, v.Validate(""))
	assert.Equal(t, `^[\w\-]+$`, v.String())
}

func TestPredicateValidator(t *testing.T) {
	v := PredicateValidator(func(s string) bool { return strings.HasPrefix(s, "v") })

	assert.True(t, v.Validate("v1"))
	assert.False(t, v.Validate("1"))
}

func TestField_Accepts(t *testing.T) {
	f := &Field{Name: "name"}
	assert.True(t, f.Accepts("anything at all"))

	f.Validator = MatchPattern(`^\d+$`)
	assert.True(t, f.Accepts("42"))
	assert.False(t, f.Accepts("forty-two"))
}

func TestField_WarningText(t *testing.T) {
	f := &Field{Name: "name", Warning: "Name must be a single word"}
	assert.Equal(t, "Name must be a single word", f.WarningText())

	f.Warning = ""
	assert.Equal(t, "Invalid value for name", f.WarningText())
}

func TestCatalog(t *testing.T) {
	name := &Field{Name: "name", Default: StaticDefault("proj")}
	version := &Field{Name: "version", Default: StaticDefault("0.1.0")}

	c, err := NewCatalog(name, version)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []*Field{name, version}, c.Fields())

	f, ok := c.Lookup("version")
	require.True(t, ok)
	assert.Same(t, version, f)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestNewCatalog_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields []*Field
		want   error
	}{
		{"empty name", []*Field{{Name: ""}}, ErrEmptyFieldName},
		{"nil field", []*Field{nil}, ErrEmptyFieldName},
		{"duplicate", []*Field{{Name: "a"}, {Name: "b"}, {Name: "a"}}, ErrDuplicateField},
		{"reserved", []*Field{{Name: ConfirmFieldName}}, ErrReservedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.fields...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalog_Clone(t *testing.T) {
	c, err := NewCatalog(&Field{Name: "name", Default: StaticDefault("proj")})
	require.NoError(t, err)

	clone := c.Clone()
	clone.Fields()[0].Default = StaticDefault("changed")

	assert.Equal(t, "proj", c.Fields()[0].Default.Value())
	assert.Equal(t, "changed", clone.Fields()[0].Default.Value())
}

func TestCommandError(t *testing.T) {
	err := &CommandError{Program: "git", Args: []string{"describe"}, ExitCode: 128, Stderr: "fatal: no names found"}

	assert.Equal(t, "git describe: exit status 128: fatal: no names found", err.Error())
	assert.ErrorIs(t, err, ErrCommandFailed)

	err.Stderr = ""
	assert.Equal(t, "git describe: exit status 128", err.Error())
}

func TestSessionAbortError(t *testing.T) {
	cause := errors.New("stdin closed")
	err := &SessionAbortError{Field: "name", Err: cause}

	assert.ErrorIs(t, err, ErrSessionAborted)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `session aborted at "name": stdin closed`, err.Error())

	err.Field = ""
	assert.Equal(t, "session aborted: stdin closed", err.Error())
}

func TestExecCommand_Builders(t *testing.T) {
	cmd := NewCommand("git", []string{"config", "--get", "user.name"}, "/repo").
		WithFallback("none").
		WithEnv("GIT_PAGER=cat")

	assert.Equal(t, "git", cmd.Program)
	assert.Equal(t, "/repo", cmd.Dir)
	require.NotNil(t, cmd.Fallback)
	assert.Equal(t, "none", *cmd.Fallback)
	assert.Equal(t, []string{"GIT_PAGER=cat"}, cmd.Env)

	sh := NewShellCommand("echo hi", "")
	assert.Equal(t, "sh", sh.Program)
	assert.Equal(t, []string{"-c", "echo hi"}, sh.Args)
	assert.Nil(t, sh.Fallback)
}
