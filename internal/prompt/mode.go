package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/runoshun/git-scaffold/internal/domain"
	"golang.org/x/term"
)

// New returns the prompter selected by cfg.Mode.
// In auto mode the terminal UI is used only when both streams are terminals.
func New(cfg domain.PromptConfig, in io.Reader, out io.Writer) (domain.Prompter, error) {
	style := NewStyle(cfg, out)

	switch cfg.Mode {
	case "", domain.PromptModeAuto:
		if isTerminal(in) && isTerminal(out) {
			return NewTeaPrompter(in, out, style), nil
		}
		return NewLinePrompter(in, out, style), nil
	case domain.PromptModeLine:
		return NewLinePrompter(in, out, style), nil
	case domain.PromptModeTUI:
		return NewTeaPrompter(in, out, style), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, cfg.Mode)
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}
