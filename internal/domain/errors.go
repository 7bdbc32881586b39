package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrEmptyFieldName = errors.New("field name cannot be empty")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrReservedField  = errors.New("field name is reserved")
	ErrEmptyCatalog   = errors.New("catalog has no fields")
	ErrCommandFailed  = errors.New("command failed")
	ErrSessionAborted = errors.New("session aborted")
	ErrTooManyPasses  = errors.New("answers were not confirmed")
	ErrConfigExists   = errors.New("config file already exists")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrNotGitRepo     = errors.New("not a git repository (or any of the parent directories)")
	ErrRemoteNotFound = errors.New("remote not found")
	ErrNoIdentity     = errors.New("no user name configured")
	ErrInterrupted    = errors.New("interrupted")
	ErrUnknownMode    = errors.New("unknown prompt mode")
)

// CommandError reports an external command that failed without a fallback.
// Fields are ordered to minimize memory padding.
type CommandError struct {
	Program  string
	Stderr   string // Trailing whitespace stripped
	Args     []string
	ExitCode int // -1 when the program could not be started
}

func (e *CommandError) Error() string {
	cmdline := strings.TrimSpace(e.Program + " " + strings.Join(e.Args, " "))
	if e.Stderr == "" {
		return fmt.Sprintf("%s: exit status %d", cmdline, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit status %d: %s", cmdline, e.ExitCode, e.Stderr)
}

// Is makes errors.Is(err, ErrCommandFailed) hold.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// SessionAbortError terminates a prompting session without a result.
type SessionAbortError struct {
	Err   error
	Field string // Field being processed when the session stopped, if any
}

func (e *SessionAbortError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("session aborted: %v", e.Err)
	}
	return fmt.Sprintf("session aborted at %q: %v", e.Field, e.Err)
}

// Unwrap returns the cause.
func (e *SessionAbortError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSessionAborted) hold.
func (e *SessionAbortError) Is(target error) bool {
	return target == ErrSessionAborted
}
