package builtin

import "github.com/Masterminds/semver/v3"

// IsVersion reports whether v parses as a semantic version.
// A leading "v" and missing minor or patch parts are accepted.
func IsVersion(v string) bool {
	_, err := semver.NewVersion(v)
	return err == nil
}

// CanonicalVersion returns v in MAJOR.MINOR.PATCH form without a "v" prefix.
// Values that do not parse are returned unchanged.
func CanonicalVersion(v string) string {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return parsed.String()
}
