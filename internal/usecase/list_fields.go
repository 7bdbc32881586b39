package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// ListFieldsInput contains the input for the ListFields use case.
type ListFieldsInput struct {
	Catalog   *domain.Catalog   // Catalog to describe (required)
	Overrides map[string]string // Operator defaults by field name
}

// FieldSummary describes one catalog field for display.
// Fields are ordered to minimize memory padding.
type FieldSummary struct {
	Name       string
	Message    string
	Default    string // Quoted static value or override, or "(dynamic)"
	Validated  bool   // Has a validator
	Sanitized  bool   // Has a sanitizer
	Overridden bool   // Default comes from an operator override
}

// ListFieldsOutput contains the output of the ListFields use case.
type ListFieldsOutput struct {
	Fields []FieldSummary // In declaration order
}

// ListFields describes a catalog without running any resolver.
type ListFields struct{}

// NewListFields creates a new ListFields use case.
func NewListFields() *ListFields {
	return &ListFields{}
}

// Execute summarizes each field in order.
func (uc *ListFields) Execute(_ context.Context, in ListFieldsInput) (*ListFieldsOutput, error) {
	if in.Catalog == nil {
		return nil, domain.ErrEmptyCatalog
	}

	out := &ListFieldsOutput{Fields: make([]FieldSummary, 0, in.Catalog.Len())}
	for _, f := range in.Catalog.Fields() {
		s := FieldSummary{
			Name:      f.Name,
			Message:   f.Message,
			Default:   f.Default.String(),
			Validated: f.Validator != nil,
			Sanitized: f.Sanitize != nil,
		}
		if v, ok := in.Overrides[f.Name]; ok {
			s.Default = fmt.Sprintf("%q", v)
			s.Overridden = true
		}
		out.Fields = append(out.Fields, s)
	}
	return out, nil
}
