package domain

import "regexp"

// Confirmation field appended after the catalog.
const (
	ConfirmFieldName = "confirm"
	ConfirmMessage   = "Are these answers correct?"
	ConfirmDefault   = "Y/n"
)

var affirmativePattern = regexp.MustCompile(`(?i)y`)

// IsAffirmative reports whether a confirmation answer means yes.
// Any answer containing the letter y, in either case, is a yes;
// this includes the untouched default "Y/n".
func IsAffirmative(answer string) bool {
	return affirmativePattern.MatchString(answer)
}

// ConfirmField returns the field used to confirm a completed pass.
func ConfirmField() *Field {
	return &Field{
		Name:    ConfirmFieldName,
		Message: ConfirmMessage,
		Default: StaticDefault(ConfirmDefault),
	}
}
