package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// Ensure LinePrompter implements domain.Prompter interface.
var _ domain.Prompter = (*LinePrompter)(nil)

// LinePrompter reads one line per question.
// It is used when input is piped or the terminal UI is disabled.
// Ask must not be called concurrently.
type LinePrompter struct {
	in    *bufio.Reader
	out   io.Writer
	// pending holds a read left running by a canceled Ask
	pending chan lineResult
	style   Style
}

// NewLinePrompter creates a LinePrompter reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer, style Style) *LinePrompter {
	return &LinePrompter{
		in:    bufio.NewReader(in),
		out:   out,
		style: style,
	}
}

type lineResult struct {
	err  error
	line string
}

// Ask prints the question and reads a line.
// A final line without a newline is accepted; EOF before any input is an error.
func (p *LinePrompter) Ask(ctx context.Context, q domain.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, p.style.Question(q)); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	ch := p.pending
	if ch == nil {
		ch = make(chan lineResult, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		p.pending = nil
		if res.err != nil && (!errors.Is(res.err, io.EOF) || res.line == "") {
			return "", fmt.Errorf("read answer for %s: %w", q.Name, res.err)
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// Warn prints a validation warning.
func (p *LinePrompter) Warn(_ context.Context, message string) error {
	_, err := fmt.Fprintln(p.out, p.style.RenderWarning(message))
	return err
}

// Summary prints the answers of the current pass.
func (p *LinePrompter) Summary(_ context.Context, answers *domain.Answers) error {
	_, err := fmt.Fprint(p.out, "\n"+p.style.RenderSummary(answers)+"\n")
	return err
}
