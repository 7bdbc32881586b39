package domain

import (
	"context"
	"fmt"
	"regexp"
)

// Placeholder values with special meaning in answers.
const (
	NoneValue         = "none" // Finalized to an empty string
	UnresolvedDefault = "???"  // Default shown when a dynamic resolver fails
)

// ResolveFunc computes a dynamic default from the answers given so far.
// answers holds only the fields declared before the one being resolved.
type ResolveFunc func(ctx context.Context, answers *Answers) (string, error)

// SanitizeFunc normalizes a confirmed raw value.
// answers is the full confirmed (unsanitized) result set.
type SanitizeFunc func(value string, answers *Answers) string

// Default is either a static value or a dynamic resolver.
// The zero value is a static empty default.
type Default struct {
	resolve ResolveFunc
	value   string
}

// StaticDefault returns a default that always yields value.
func StaticDefault(value string) Default {
	return Default{value: value}
}

// DynamicDefault returns a default computed by fn at prompt time.
func DynamicDefault(fn ResolveFunc) Default {
	return Default{resolve: fn}
}

// IsDynamic reports whether the default needs a resolver call.
func (d Default) IsDynamic() bool {
	return d.resolve != nil
}

// Value returns the static value. It is empty for dynamic defaults.
func (d Default) Value() string {
	return d.value
}

// Resolver returns the resolver of a dynamic default, or nil.
func (d Default) Resolver() ResolveFunc {
	return d.resolve
}

// String renders the default for listings.
func (d Default) String() string {
	if d.IsDynamic() {
		return "(dynamic)"
	}
	return fmt.Sprintf("%q", d.value)
}

// Validator decides whether an answer is acceptable.
type Validator interface {
	Validate(value string) bool
}

// PatternValidator accepts values matching a regular expression.
type PatternValidator struct {
	re *regexp.Regexp
}

// MatchPattern returns a validator for the given expression.
// It panics if expr does not compile; patterns are declared in code.
func MatchPattern(expr string) *PatternValidator {
	return &PatternValidator{re: regexp.MustCompile(expr)}
}

// Validate implements Validator.
func (v *PatternValidator) Validate(value string) bool {
	return v.re.MatchString(value)
}

// String returns the source pattern.
func (v *PatternValidator) String() string {
	return v.re.String()
}

// PredicateValidator adapts a plain function to Validator.
type PredicateValidator func(value string) bool

// Validate implements Validator.
func (f PredicateValidator) Validate(value string) bool {
	return f(value)
}

// Field describes one unit of information collected from the user.
// Fields are ordered to minimize memory padding.
type Field struct {
	Validator Validator    // Optional
	Sanitize  SanitizeFunc // Optional, applied after confirmation
	Default   Default
	Name      string // Unique within a catalog
	Message   string // Prompt text
	Warning   string // Shown when validation fails
}

// WarningText returns the message shown for a rejected answer.
func (f *Field) WarningText() string {
	if f.Warning != "" {
		return f.Warning
	}
	return fmt.Sprintf("Invalid value for %s", f.Name)
}

// Accepts reports whether value passes the field's validator.
// Fields without a validator accept everything.
func (f *Field) Accepts(value string) bool {
	if f.Validator == nil {
		return true
	}
	return f.Validator.Validate(value)
}
