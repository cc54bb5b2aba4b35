// Package git provides repository state access for bumpgen: current branch
// detection, repository root resolution, and remote fetch. It uses the go-git
// library for these core operations; history-walk commands (rev-list, log,
// diff) go through internal/gitcmd instead since go-git has no ancestry-path
// support.
package git

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
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

// DefaultFetchTimeout bounds remote fetch operations to prevent indefinite hangs.
const DefaultFetchTimeout = 60 * time.Second

// Repo wraps an opened repository and implements the repository state
// queries the commit source needs. Holding the path explicitly (rather
// than relying on the process working directory) keeps every component
// deterministic and testable.
type Repo struct {
	path string
	repo *gogit.Repository
}

// Open opens the git repository at path, traversing up the directory tree
// to find the repository root. If path is empty the current working
// directory is used.
func Open(path string) (*Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return &Repo{path: path, repo: repo}, nil
}

// CurrentBranch returns the name of the currently checked out branch.
// Returns empty string in detached HEAD state.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		logDebug("[git] CurrentBranch: detached HEAD state")
		return "", nil
	}

	branch := head.Name().Short()
	logDebug("[git] CurrentBranch: %s", branch)
	return branch, nil
}

// Root returns the absolute path to the repository root.
func (r *Repo) Root() (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	root := worktree.Filesystem.Root()
	logDebug("[git] Root: %s", root)
	return root, nil
}

// Fetch refreshes the remote-tracking ref for the given branch from origin.
// SSH remotes are skipped when no SSH agent is available; "already
// up-to-date" is not an error. A repository with no remotes is not an
// error either since the analysis can still run against local state.
func (r *Repo) Fetch(ctx context.Context, branch string) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultFetchTimeout)
		defer cancel()
	}

	remote, err := r.repo.Remote("origin")
	if err != nil {
		logDebug("[git] Fetch: no origin remote: %v", err)
		return nil
	}

	remoteConfig := remote.Config()
	if len(remoteConfig.URLs) == 0 {
		return nil
	}
	url := remoteConfig.URLs[0]

	if isSSHURL(url) && !isSSHAgentAvailable() {
		logDebug("[git] skipping fetch: SSH URL without SSH agent available")
		return nil
	}

	logDebug("[git] fetching branch %s from origin (%s)", branch, url)

	refSpec := config.RefSpec("+refs/heads/" + branch + ":refs/remotes/origin/" + branch)
	err = r.repo.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: "origin",
		Auth:       getAuthForURL(url),
		RefSpecs:   []config.RefSpec{refSpec},
	})

	// Treat timeout/cancellation as a soft failure; the local
	// remote-tracking ref is still usable.
	if ctx.Err() != nil {
		logDebug("[git] fetch timed out or cancelled")
		return nil
	}

	if err == gogit.NoErrAlreadyUpToDate {
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetching branch %s: %w", branch, err)
	}
	return nil
}

// getAuthForURL returns the appropriate authentication method for a remote URL.
// SSH URLs use SSH agent auth, HTTPS URLs use environment credentials.
func getAuthForURL(url string) transport.AuthMethod {
	if isSSHURL(url) {
		auth, err := ssh.NewSSHAgentAuth("git")
		if err != nil {
			logDebug("[git] SSH agent auth failed: %v", err)
			return nil
		}
		return auth
	}

	username := os.Getenv("GIT_USERNAME")
	password := os.Getenv("GIT_PASSWORD")
	if username == "" {
		username = os.Getenv("GITHUB_TOKEN")
		if username != "" {
			password = "" // GitHub token can be used as username with empty password
		}
	}

	if username != "" {
		return &http.BasicAuth{
			Username: username,
			Password: password,
		}
	}

	return nil
}

// isSSHURL checks if a URL is an SSH URL.
// Detects git@ (SCP-style), ssh://, and git+ssh:// schemes.
func isSSHURL(url string) bool {
	return strings.HasPrefix(url, "git@") ||
		strings.HasPrefix(url, "ssh://") ||
		strings.HasPrefix(url, "git+ssh://")
}

// isSSHAgentAvailable checks if an SSH agent is available.
// Returns true only if SSH_AUTH_SOCK is set and non-empty.
func isSSHAgentAvailable() bool {
	sock := strings.TrimSpace(os.Getenv("SSH_AUTH_SOCK"))
	return sock != ""
}
