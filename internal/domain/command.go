package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Fallback *string // Returned instead of an error when the command fails
	Program  string
	Dir      string
	Args     []string
	Env      []string // Extra KEY=VALUE pairs appended to the process environment
}

// NewCommand creates an ExecCommand for program with args, run in dir.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// NewShellCommand creates an ExecCommand that runs script with sh -c.
func NewShellCommand(script, dir string) *ExecCommand {
	return NewCommand("sh", []string{"-c", script}, dir)
}

// WithFallback sets the value returned when the command fails.
func (c *ExecCommand) WithFallback(value string) *ExecCommand {
	c.Fallback = &value
	return c
}

// WithEnv appends environment entries.
func (c *ExecCommand) WithEnv(env ...string) *ExecCommand {
	c.Env = append(c.Env, env...)
	return c
}
