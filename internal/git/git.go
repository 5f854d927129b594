// Package git provides the version-control collaborator for the changelog
// CLI: staging and committing the changelog file after a release, and
// discovering the origin remote for link resolution. It uses the go-git
// library so no git CLI installation is required.
package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo wraps a git repository rooted at or above a working directory.
type Repo struct {
	repo *git.Repository
	root string
}

// Open opens the git repository containing dir, traversing up the directory
// tree to find the repository root. If dir is empty, the current working
// directory is used.
func Open(dir string) (*Repo, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", dir)

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repo{repo: repo, root: worktree.Filesystem.Root()}, nil
}

// Stage adds the file at path (absolute or relative to the working
// directory) to the index.
func (r *Repo) Stage(path string) error {
	rel, err := r.relPath(path)
	if err != nil {
		return err
	}

	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	if _, err := worktree.Add(rel); err != nil {
		return fmt.Errorf("staging %s: %w", rel, err)
	}

	logDebug("[git] staged %s", rel)
	return nil
}

// Commit records the staged changes with the given message. Author identity
// falls back to the repository configuration; when none is set, a neutral
// identity is used so automated release commits still succeed.
func (r *Repo) Commit(message string) error {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	opts := &git.CommitOptions{}
	if name, email, ok := r.configuredIdentity(); ok {
		opts.Author = &object.Signature{Name: name, Email: email, When: time.Now()}
	} else {
		opts.Author = &object.Signature{Name: "changelog", Email: "changelog@localhost", When: time.Now()}
	}

	hash, err := worktree.Commit(message, opts)
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	logDebug("[git] committed %s: %q", hash, message)
	return nil
}

// OriginURL returns the first URL of the "origin" remote.
func (r *Repo) OriginURL() (string, error) {
	remote, err := r.repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("getting origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL")
	}

	logDebug("[git] origin URL: %s", urls[0])
	return urls[0], nil
}

// Root returns the repository root directory.
func (r *Repo) Root() string {
	return r.root
}

// relPath converts path into the slash-separated worktree-relative form
// go-git expects.
func (r *Repo) relPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	rel, err := filepath.Rel(r.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the repository at %s", path, r.root)
	}
	return filepath.ToSlash(rel), nil
}

// configuredIdentity reads user.name and user.email from the repository
// configuration (which go-git merges with the global config).
func (r *Repo) configuredIdentity() (name, email string, ok bool) {
	cfg, err := r.repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return "", "", false
	}
	if cfg.User.Name == "" || cfg.User.Email == "" {
		return "", "", false
	}
	return cfg.User.Name, cfg.User.Email, true
}
