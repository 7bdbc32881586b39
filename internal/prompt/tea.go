package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/git-scaffold/internal/domain"
)

// Ensure TeaPrompter implements domain.Prompter interface.
var _ domain.Prompter = (*TeaPrompter)(nil)

// TeaPrompter asks each question with a bubbletea text input.
// The default is shown as placeholder text.
type TeaPrompter struct {
	in    io.Reader
	out   io.Writer
	keys  KeyMap
	style Style
}

// NewTeaPrompter creates a TeaPrompter on the given terminal streams.
func NewTeaPrompter(in io.Reader, out io.Writer, style Style) *TeaPrompter {
	return &TeaPrompter{
		in:    in,
		out:   out,
		keys:  DefaultKeyMap(),
		style: style,
	}
}

// Ask runs one inline program for q.
func (p *TeaPrompter) Ask(ctx context.Context, q domain.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	program := tea.NewProgram(
		newAskModel(q, p.style, p.keys),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("run prompt for %s: %w", q.Name, err)
	}

	m, ok := final.(*askModel)
	if !ok || m.canceled {
		return "", domain.ErrInterrupted
	}
	return m.value, nil
}

// Warn prints a validation warning below the answered question.
func (p *TeaPrompter) Warn(_ context.Context, message string) error {
	_, err := fmt.Fprintln(p.out, p.style.RenderWarning(message))
	return err
}

// Summary prints the answers of the current pass.
func (p *TeaPrompter) Summary(_ context.Context, answers *domain.Answers) error {
	_, err := fmt.Fprint(p.out, "\n"+p.style.RenderSummary(answers)+"\n")
	return err
}

// askModel is the bubbletea model for a single question.
// Fields are ordered to minimize memory padding.
type askModel struct {
	question domain.Question
	value    string
	keys     KeyMap
	style    Style
	input    textinput.Model
	done     bool
	canceled bool
}

func newAskModel(q domain.Question, style Style, keys KeyMap) *askModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = q.Default
	ti.PlaceholderStyle = style.Default
	ti.CharLimit = 500
	ti.Focus()

	return &askModel{
		question: q,
		keys:     keys,
		style:    style,
		input:    ti,
	}
}

// Init starts the cursor blink.
func (m *askModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses. Enter submits, cancel keys abort.
func (m *askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the question line. Once answered, the typed value
// (or the default) stays on screen without the cursor.
func (m *askModel) View() string {
	label := m.style.Label(m.question)
	switch {
	case m.canceled:
		return label + "\n"
	case m.done:
		shown := m.value
		if shown == "" {
			shown = m.style.Default.Render(m.question.Default)
		}
		return label + shown + "\n"
	default:
		return label + m.input.View()
	}
}
