// Package builtin provides the standard field catalog of a new project.
// This package is responsible for the tool-specific lookups (git) that domain should not know about.
package builtin

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/runoshun/git-scaffold/internal/domain"
)

// Fallbacks used when git cannot answer.
const (
	DefaultVersion = "0.1.0"
	DefaultLicense = "MIT"
	OriginRemote   = "origin"
)

// Deps holds what the builtin resolvers need.
type Deps struct {
	Runner domain.CommandRunner // Executes git commands
	Repo   domain.RepoInspector // Reads repository metadata directly
	Dir    string               // Project directory
}

var keywordSeparators = regexp.MustCompile(`[,\s]+`)

// Catalog returns the standard project fields in the order they are asked.
func Catalog(deps Deps) (*domain.Catalog, error) {
	return domain.NewCatalog(
		&domain.Field{
			Name:      "name",
			Message:   "Project name",
			Default:   domain.StaticDefault(filepath.Base(deps.Dir)),
			Validator: domain.MatchPattern(`^[\w\-.]+$`),
			Warning:   "Name may only contain letters, digits, dots, dashes and underscores",
		},
		&domain.Field{
			Name:    "description",
			Message: "Description",
		},
		&domain.Field{
			Name:      "version",
			Message:   "Version",
			Default:   domain.DynamicDefault(latestTag(deps)),
			Validator: domain.PredicateValidator(IsVersion),
			Warning:   "Version must be a semantic version such as 1.2.3",
			Sanitize:  func(v string, _ *domain.Answers) string { return CanonicalVersion(v) },
		},
		&domain.Field{
			Name:    "repository",
			Message: "Git repository",
			Default: domain.DynamicDefault(originURL(deps)),
		},
		&domain.Field{
			Name:    "module",
			Message: "Module path",
			Default: domain.DynamicDefault(modulePath),
		},
		&domain.Field{
			Name:    "entry",
			Message: "Entry point",
			Default: domain.DynamicDefault(func(_ context.Context, answers *domain.Answers) (string, error) {
				return "cmd/" + answers.Value("name"), nil
			}),
		},
		&domain.Field{
			Name:    "issues",
			Message: "Issue tracker",
			Default: domain.DynamicDefault(issueTracker),
		},
		&domain.Field{
			Name:     "keywords",
			Message:  "Keywords",
			Sanitize: func(v string, _ *domain.Answers) string { return NormalizeKeywords(v) },
		},
		&domain.Field{
			Name:    "author",
			Message: "Author",
			Default: domain.DynamicDefault(authorName(deps)),
		},
		&domain.Field{
			Name:      "license",
			Message:   "License",
			Default:   domain.StaticDefault(DefaultLicense),
			Validator: domain.MatchPattern(`^[\w\-.+]+$`),
			Warning:   "License must be an SPDX identifier such as MIT or Apache-2.0",
		},
		&domain.Field{
			Name:    "identifier",
			Message: "Identifier",
			Default: domain.DynamicDefault(func(_ context.Context, answers *domain.Answers) (string, error) {
				return domain.Identifier(answers.Value("name")), nil
			}),
			Sanitize: func(v string, answers *domain.Answers) string {
				if v == "" {
					return domain.Identifier(answers.Value("name"))
				}
				return domain.Identifier(v)
			},
		},
	)
}

// latestTag resolves the most recent tag, or DefaultVersion when there is none.
func latestTag(deps Deps) domain.ResolveFunc {
	return func(ctx context.Context, _ *domain.Answers) (string, error) {
		cmd := domain.NewCommand("git", []string{"describe", "--tags", "--abbrev=0"}, deps.Dir).
			WithFallback(DefaultVersion)
		return deps.Runner.Run(ctx, cmd)
	}
}

// originURL reads the origin remote, asking git itself when the repository
// cannot be read directly.
func originURL(deps Deps) domain.ResolveFunc {
	return func(ctx context.Context, _ *domain.Answers) (string, error) {
		if url, err := deps.Repo.RemoteURL(deps.Dir, OriginRemote); err == nil {
			return url, nil
		}
		cmd := domain.NewCommand("git", []string{"config", "--get", "remote." + OriginRemote + ".url"}, deps.Dir).
			WithFallback(domain.NoneValue)
		return deps.Runner.Run(ctx, cmd)
	}
}

// authorName reads the committer name from the repository or from git config.
func authorName(deps Deps) domain.ResolveFunc {
	return func(ctx context.Context, _ *domain.Answers) (string, error) {
		if name, err := deps.Repo.UserName(deps.Dir); err == nil {
			return name, nil
		}
		cmd := domain.NewCommand("git", []string{"config", "--get", "user.name"}, deps.Dir).
			WithFallback(domain.NoneValue)
		return deps.Runner.Run(ctx, cmd)
	}
}

func modulePath(_ context.Context, answers *domain.Answers) (string, error) {
	if path, ok := domain.ModulePath(answers.Value("repository")); ok {
		return path, nil
	}
	return answers.Value("name"), nil
}

func issueTracker(_ context.Context, answers *domain.Answers) (string, error) {
	if url, ok := domain.RepositoryWebURL(answers.Value("repository")); ok {
		return url + "/issues", nil
	}
	return domain.NoneValue, nil
}

// NormalizeKeywords splits on commas and whitespace and joins with ", ".
func NormalizeKeywords(v string) string {
	parts := keywordSeparators.Split(strings.TrimSpace(v), -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}
