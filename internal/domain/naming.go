package domain

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	scpLikeURL        = regexp.MustCompile(`^(?:[\w.\-]+@)?([\w.\-]+):(.+)$`)
	nonIdentifierChar = regexp.MustCompile(`[^a-z0-9]+`)
)

// splitRepositoryURL extracts host and path from a git remote URL.
// It accepts scheme URLs (https://, ssh://, git+https://), scp-like
// URLs (git@host:owner/repo.git) and bare host/path forms.
func splitRepositoryURL(raw string) (host, path string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NoneValue {
		return "", "", false
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(strings.TrimPrefix(raw, "git+"))
		if err != nil || u.Host == "" {
			return "", "", false
		}
		host, path = u.Hostname(), u.Path
	} else if m := scpLikeURL.FindStringSubmatch(raw); m != nil {
		host, path = m[1], m[2]
	} else {
		i := strings.Index(raw, "/")
		if i <= 0 {
			return "", "", false
		}
		host, path = raw[:i], raw[i:]
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	if host == "" || path == "" {
		return "", "", false
	}
	return host, path, true
}

// RepositoryWebURL returns the https URL of a repository remote.
func RepositoryWebURL(raw string) (string, bool) {
	host, path, ok := splitRepositoryURL(raw)
	if !ok {
		return "", false
	}
	return "https://" + host + "/" + path, true
}

// ModulePath returns the import path (host/owner/repo) of a repository remote.
func ModulePath(raw string) (string, bool) {
	host, path, ok := splitRepositoryURL(raw)
	if !ok {
		return "", false
	}
	return host + "/" + path, true
}

// Identifier normalizes name into a lowercase identifier made of
// letters, digits and underscores. It never starts with a digit.
func Identifier(name string) string {
	id := nonIdentifierChar.ReplaceAllString(strings.ToLower(name), "_")
	id = strings.Trim(id, "_")
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id
}
