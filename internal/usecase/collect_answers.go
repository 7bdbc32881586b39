// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// CollectAnswersInput contains the parameters for a prompting session.
// Fields are ordered to minimize memory padding.
type CollectAnswersInput struct {
	Catalog   *domain.Catalog   // Fields to ask, in order (required)
	Overrides map[string]string // Operator defaults by field name
	MaxPasses int               // Declined confirmations allowed before aborting (0 = unlimited)
}

// CollectAnswersOutput contains the result of a confirmed session.
type CollectAnswersOutput struct {
	Answers *domain.Answers // Finalized answers in declaration order
	Passes  int             // Number of passes the user went through
}

// CollectAnswers is the use case that runs an interactive prompting session.
type CollectAnswers struct {
	prompter  domain.Prompter
	finalizer *AnswerFinalizer
	logger    domain.Logger
}

// NewCollectAnswers creates a new CollectAnswers use case.
func NewCollectAnswers(prompter domain.Prompter, logger domain.Logger) *CollectAnswers {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &CollectAnswers{
		prompter:  prompter,
		finalizer: NewAnswerFinalizer(),
		logger:    logger,
	}
}

// Execute asks every field, then the confirmation, repeating the whole pass
// until the user confirms. Any error is a *domain.SessionAbortError.
func (uc *CollectAnswers) Execute(ctx context.Context, in CollectAnswersInput) (*CollectAnswersOutput, error) {
	if in.Catalog == nil || in.Catalog.Len() == 0 {
		return nil, &domain.SessionAbortError{Err: domain.ErrEmptyCatalog}
	}

	s := &session{
		prompter:  uc.prompter,
		finalizer: uc.finalizer,
		logger:    uc.logger,
		resolver:  NewDefaultResolver(in.Overrides, uc.logger),
		fields:    in.Catalog.Clone().Fields(),
		maxPasses: in.MaxPasses,
		state:     stateIdle,
	}

	answers, err := s.run(ctx)
	if err != nil {
		uc.logger.Error("session", err.Error())
		return nil, err
	}

	uc.logger.Info("session", fmt.Sprintf("confirmed %d answers after %d pass(es)", answers.Len(), s.passes))
	return &CollectAnswersOutput{
		Answers: answers,
		Passes:  s.passes,
	}, nil
}

// sessionState is a state of the prompting session.
type sessionState int

const (
	stateIdle sessionState = iota
	stateAskingField
	stateValidating
	stateAskingConfirmation
	stateConfirming
	stateResettingDefaults
	stateComplete
)

// session holds the mutable state of one prompting session.
// Fields are ordered to minimize memory padding.
type session struct {
	prompter  domain.Prompter
	logger    domain.Logger
	resolver  *DefaultResolver
	finalizer *AnswerFinalizer
	answers   *domain.Answers
	fields    []*domain.Field // Working copy; defaults are rewritten on reset
	input     string          // Effective input awaiting validation
	effective string          // Resolved default of the current field
	index     int
	passes    int
	maxPasses int
	state     sessionState
	retry     bool // Current field is re-asked after a rejected value
}

func (s *session) run(ctx context.Context) (*domain.Answers, error) {
	for {
		var err error
		switch s.state {
		case stateIdle:
			s.startPass()
		case stateAskingField:
			err = s.askField(ctx)
		case stateValidating:
			err = s.validate(ctx)
		case stateAskingConfirmation:
			err = s.askConfirmation(ctx)
		case stateConfirming:
			s.confirm()
		case stateResettingDefaults:
			err = s.resetDefaults()
		case stateComplete:
			return s.finalizer.Finalize(s.fields, s.answers), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (s *session) startPass() {
	s.answers = domain.NewAnswers()
	s.index = 0
	s.retry = false
	s.passes++
	s.logger.Info("session", fmt.Sprintf("pass %d: asking %d fields", s.passes, len(s.fields)))
	s.state = stateAskingField
}

func (s *session) askField(ctx context.Context) error {
	field := s.fields[s.index]
	if err := ctx.Err(); err != nil {
		return s.abort(field.Name, err)
	}

	if !s.retry {
		def, err := s.resolver.Resolve(ctx, field, s.answers)
		if err != nil {
			return s.abort(field.Name, err)
		}
		s.effective = def
	}

	raw, err := s.prompter.Ask(ctx, domain.Question{
		Name:    field.Name,
		Message: field.Message,
		Default: s.effective,
	})
	if err != nil {
		return s.abort(field.Name, err)
	}

	s.input = effectiveInput(raw, s.effective)
	s.state = stateValidating
	return nil
}

func (s *session) validate(ctx context.Context) error {
	field := s.fields[s.index]
	if !field.Accepts(s.input) {
		s.logger.Debug("session", fmt.Sprintf("%s: rejected %q", field.Name, s.input))
		if err := s.prompter.Warn(ctx, field.WarningText()); err != nil {
			return s.abort(field.Name, err)
		}
		s.retry = true
		s.state = stateAskingField
		return nil
	}

	s.answers.Set(field.Name, s.input)
	s.retry = false
	s.index++
	if s.index == len(s.fields) {
		s.state = stateAskingConfirmation
	} else {
		s.state = stateAskingField
	}
	return nil
}

func (s *session) askConfirmation(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return s.abort(domain.ConfirmFieldName, err)
	}
	if err := s.prompter.Summary(ctx, s.answers); err != nil {
		return s.abort(domain.ConfirmFieldName, err)
	}

	confirm := domain.ConfirmField()
	raw, err := s.prompter.Ask(ctx, domain.Question{
		Name:    confirm.Name,
		Message: confirm.Message,
		Default: confirm.Default.Value(),
	})
	if err != nil {
		return s.abort(confirm.Name, err)
	}

	s.answers.Set(confirm.Name, effectiveInput(raw, confirm.Default.Value()))
	s.state = stateConfirming
	return nil
}

func (s *session) confirm() {
	answer := s.answers.Value(domain.ConfirmFieldName)
	s.answers.Delete(domain.ConfirmFieldName)

	if domain.IsAffirmative(answer) {
		s.state = stateComplete
		return
	}
	s.logger.Info("session", fmt.Sprintf("pass %d declined", s.passes))
	s.state = stateResettingDefaults
}

// resetDefaults makes every answer of the declined pass the default of its field.
func (s *session) resetDefaults() error {
	if s.maxPasses > 0 && s.passes >= s.maxPasses {
		return s.abort("", fmt.Errorf("%w after %d pass(es)", domain.ErrTooManyPasses, s.passes))
	}

	for _, field := range s.fields {
		field.Default = domain.StaticDefault(s.answers.Value(field.Name))
	}
	// Carried-over answers must not be masked by operator overrides.
	s.resolver = s.resolver.WithoutOverrides()
	s.state = stateIdle
	return nil
}

func (s *session) abort(field string, err error) error {
	return &domain.SessionAbortError{Field: field, Err: err}
}

// effectiveInput returns the trimmed input, or def when nothing was typed.
func effectiveInput(raw, def string) string {
	in := strings.TrimSpace(raw)
	if in == "" {
		return def
	}
	return in
}
