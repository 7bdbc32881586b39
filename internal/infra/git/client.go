// Package git reads repository metadata with go-git.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/runoshun/git-scaffold/internal/domain"
)

// Ensure Client implements domain.RepoInspector interface.
var _ domain.RepoInspector = (*Client)(nil)

// Client inspects the repository containing a directory.
type Client struct{}

// NewClient creates a new repository inspector.
func NewClient() *Client {
	return &Client{}
}

// open finds the repository containing dir, walking up to parents.
// Worktrees are resolved to their common .git directory.
func open(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, domain.ErrNotGitRepo
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return repo, nil
}

// RemoteURL returns the first URL of the named remote.
func (c *Client) RemoteURL(dir, remote string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	r, err := repo.Remote(remote)
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return "", fmt.Errorf("%s: %w", remote, domain.ErrRemoteNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("read remote %s: %w", remote, err)
	}

	urls := r.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%s: %w", remote, domain.ErrRemoteNotFound)
	}
	return urls[0], nil
}

// UserName returns user.name from the repository, global and system config,
// the repository value taking precedence.
func (c *Client) UserName(dir string) (string, error) {
	repo, err := open(dir)
	if err != nil {
		return "", err
	}

	cfg, err := repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return "", fmt.Errorf("read git config: %w", err)
	}
	if cfg.User.Name == "" {
		return "", domain.ErrNoIdentity
	}
	return cfg.User.Name, nil
}
