package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/runoshun/git-scaffold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFields_Execute(t *testing.T) {
	resolverCalled := false
	catalog, err := domain.NewCatalog(
		&domain.Field{Name: "name", Message: "Name", Default: domain.StaticDefault("demo"), Validator: domain.MatchPattern(`^\w+$`)},
		&domain.Field{Name: "version", Message: "Version", Default: domain.DynamicDefault(func(context.Context, *domain.Answers) (string, error) {
			resolverCalled = true
			return "1.0.0", nil
		})},
		&domain.Field{Name: "keywords", Message: "Keywords", Sanitize: func(v string, _ *domain.Answers) string { return strings.ToLower(v) }},
	)
	require.NoError(t, err)

	out, err := NewListFields().Execute(context.Background(), ListFieldsInput{
		Catalog:   catalog,
		Overrides: map[string]string{"keywords": "cli"},
	})

	require.NoError(t, err)
	assert.False(t, resolverCalled)
	assert.Equal(t, []FieldSummary{
		{Name: "name", Message: "Name", Default: `"demo"`, Validated: true},
		{Name: "version", Message: "Version", Default: "(dynamic)"},
		{Name: "keywords", Message: "Keywords", Default: `"cli"`, Sanitized: true, Overridden: true},
	}, out.Fields)
}

func TestListFields_NilCatalog(t *testing.T) {
	_, err := NewListFields().Execute(context.Background(), ListFieldsInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}
