// Package prompt provides the interactive implementations of domain.Prompter.
package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/git-scaffold/internal/domain"
)

// ColorWarning is used for validation warnings.
var ColorWarning = lipgloss.Color("#F59E0B") // Amber

// Style renders prompts, warnings and summaries.
// It is built once from configuration and shared by a session's prompter.
// Fields are ordered to minimize memory padding.
type Style struct {
	Banner    lipgloss.Style
	Message   lipgloss.Style
	Default   lipgloss.Style
	Warning   lipgloss.Style
	Key       lipgloss.Style
	banner    string
	separator string
}

// NewStyle builds a Style for output written to out.
// Colors are dropped automatically when out is not a terminal.
func NewStyle(cfg domain.PromptConfig, out io.Writer) Style {
	r := lipgloss.NewRenderer(out)
	accent := lipgloss.Color(orDefault(cfg.Accent, domain.DefaultAccent))
	muted := lipgloss.Color(orDefault(cfg.Muted, domain.DefaultMuted))

	return Style{
		Banner:    r.NewStyle().Bold(true).Foreground(accent),
		Message:   r.NewStyle().Bold(true),
		Default:   r.NewStyle().Foreground(muted),
		Warning:   r.NewStyle().Foreground(ColorWarning),
		Key:       r.NewStyle().Foreground(accent),
		banner:    cfg.Banner,
		separator: cfg.Separator,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Label renders "<banner> <message><separator>".
func (s Style) Label(q domain.Question) string {
	var b strings.Builder
	if s.banner != "" {
		b.WriteString(s.Banner.Render(s.banner))
		b.WriteString(" ")
	}
	b.WriteString(s.Message.Render(q.Message))
	b.WriteString(s.separator)
	return b.String()
}

// Question renders the label with the default in parentheses.
// The parentheses are omitted when the default is empty.
func (s Style) Question(q domain.Question) string {
	if q.Default == "" {
		return s.Label(q)
	}
	var b strings.Builder
	if s.banner != "" {
		b.WriteString(s.Banner.Render(s.banner))
		b.WriteString(" ")
	}
	b.WriteString(s.Message.Render(q.Message))
	b.WriteString(" ")
	b.WriteString(s.Default.Render("(" + q.Default + ")"))
	b.WriteString(s.separator)
	return b.String()
}

// RenderWarning renders a validation warning line.
func (s Style) RenderWarning(msg string) string {
	return s.Warning.Render(msg)
}

// RenderSummary renders one "name: value" line per answer, in order.
func (s Style) RenderSummary(answers *domain.Answers) string {
	var b strings.Builder
	for _, k := range answers.Keys() {
		fmt.Fprintf(&b, "  %s: %s\n", s.Key.Render(k), answers.Value(k))
	}
	return b.String()
}
