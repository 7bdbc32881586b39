package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// DefaultResolver computes the effective default of a field.
type DefaultResolver struct {
	logger    domain.Logger
	overrides map[string]string
}

// NewDefaultResolver creates a resolver. overrides are operator-supplied
// defaults keyed by field name; they replace a field's own default.
func NewDefaultResolver(overrides map[string]string, logger domain.Logger) *DefaultResolver {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &DefaultResolver{
		overrides: overrides,
		logger:    logger,
	}
}

// WithoutOverrides returns a resolver that ignores operator overrides.
func (r *DefaultResolver) WithoutOverrides() *DefaultResolver {
	return &DefaultResolver{logger: r.logger}
}

// Resolve returns the default for field given the answers of the fields before it.
// A failing dynamic resolver yields domain.UnresolvedDefault. The only error
// returned is ctx's own, when it is done.
func (r *DefaultResolver) Resolve(ctx context.Context, field *domain.Field, partial *domain.Answers) (string, error) {
	if v, ok := r.overrides[field.Name]; ok {
		r.logger.Debug("resolver", fmt.Sprintf("%s: using override %q", field.Name, v))
		return v, nil
	}

	if !field.Default.IsDynamic() {
		return field.Default.Value(), nil
	}

	v, err := field.Default.Resolver()(ctx, partial.Clone())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		r.logger.Warn("resolver", fmt.Sprintf("%s: %v", field.Name, err))
		return domain.UnresolvedDefault, nil
	}

	r.logger.Debug("resolver", fmt.Sprintf("%s: resolved %q", field.Name, v))
	return v, nil
}
