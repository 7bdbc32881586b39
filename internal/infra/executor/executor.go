// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// Client implements domain.CommandRunner interface.
type Client struct {
	logger  domain.Logger
	timeout time.Duration // 0 = wait for the process to exit
}

// NewClient creates a new command executor client.
// A zero timeout lets commands run until they exit.
func NewClient(logger domain.Logger, timeout time.Duration) *Client {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Client{
		logger:  logger,
		timeout: timeout,
	}
}

// Ensure Client implements domain.CommandRunner interface.
var _ domain.CommandRunner = (*Client)(nil)

// Run executes cmd and returns stdout with trailing whitespace stripped.
// On failure it returns cmd.Fallback if set, otherwise a *domain.CommandError
// carrying the trimmed stderr.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// #nosec G204 - cmd.Program and cmd.Args come from the field catalog
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	if err == nil {
		c.logger.Debug("command", fmt.Sprintf("%s: ok", describe(cmd)))
		return trimTrailing(stdout.String()), nil
	}

	exitCode := -1
	msg := trimTrailing(stderr.String())
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	if msg == "" && exitCode == -1 {
		msg = err.Error()
	}

	if cmd.Fallback != nil {
		c.logger.Debug("command", fmt.Sprintf("%s: exit %d, using fallback %q", describe(cmd), exitCode, *cmd.Fallback))
		return *cmd.Fallback, nil
	}

	c.logger.Debug("command", fmt.Sprintf("%s: exit %d: %s", describe(cmd), exitCode, msg))
	return "", &domain.CommandError{
		Program:  cmd.Program,
		Args:     cmd.Args,
		ExitCode: exitCode,
		Stderr:   msg,
	}
}

func trimTrailing(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func describe(cmd *domain.ExecCommand) string {
	return strings.TrimSpace(cmd.Program + " " + strings.Join(cmd.Args, " "))
}
