package usecase

import "github.com/runoshun/git-scaffold/internal/domain"

// AnswerFinalizer turns a confirmed result set into the final answers.
type AnswerFinalizer struct{}

// NewAnswerFinalizer creates a new AnswerFinalizer.
func NewAnswerFinalizer() *AnswerFinalizer {
	return &AnswerFinalizer{}
}

// Finalize applies each field's sanitizer, then replaces "none" with "".
// Sanitizers see the confirmed raw answers, never sanitized siblings.
// confirmed is not modified.
func (f *AnswerFinalizer) Finalize(fields []*domain.Field, confirmed *domain.Answers) *domain.Answers {
	sanitizers := make(map[string]domain.SanitizeFunc, len(fields))
	for _, field := range fields {
		if field.Sanitize != nil {
			sanitizers[field.Name] = field.Sanitize
		}
	}

	view := confirmed.Clone()
	out := domain.NewAnswers()
	for _, name := range confirmed.Keys() {
		v := confirmed.Value(name)
		if sanitize, ok := sanitizers[name]; ok {
			v = sanitize(v, view)
		}
		if v == domain.NoneValue {
			v = ""
		}
		out.Set(name, v)
	}
	return out
}
