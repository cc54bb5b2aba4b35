// Package commits obtains commit history since the last release point and
// folds it into logical conventional-commit units.
package commits

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/bumpgen/internal/gitcmd"
)

// Commit is a single git commit with its full message.
type Commit struct {
	Hash    string
	Message string
}

// Repository abstracts the ambient git state the source needs, so tests
// can run without a real repository.
type Repository interface {
	// CurrentBranch returns the checked-out branch, or "" for detached HEAD.
	CurrentBranch() (string, error)
	// Fetch refreshes the remote-tracking ref for the given branch.
	Fetch(ctx context.Context, branch string) error
}

// Source lists the commits between the last release point and HEAD.
type Source struct {
	Repo   Repository
	Exec   gitcmd.Executor
	Branch string

	// WarningWriter receives the slow-scan warning when no tag exists
	// (default: os.Stderr).
	WarningWriter io.Writer
}

// Since returns the commits strictly between the starting reference and
// HEAD, oldest first.
//
// The starting reference depends on where the run happens:
//   - on the base branch: the latest reachable tag, falling back to the
//     repository's root commit when no tag exists
//   - on any other branch: the remote tip of the base branch
func (s *Source) Since(ctx context.Context) ([]Commit, error) {
	if err := s.Repo.Fetch(ctx, s.Branch); err != nil {
		return nil, err
	}

	current, err := s.Repo.CurrentBranch()
	if err != nil {
		return nil, err
	}

	ref, err := s.startingRef(ctx, current)
	if err != nil {
		return nil, err
	}

	hashes, err := gitcmd.Lines(ctx, s.Exec,
		"rev-list", "--ancestry-path", "--reverse", ref+"..HEAD")
	if err != nil {
		return nil, err
	}

	commits := make([]Commit, 0, len(hashes))
	for _, hash := range hashes {
		message, err := s.Exec.Run(ctx, "log", "-1", "--format=%B", hash)
		if err != nil {
			return nil, err
		}
		commits = append(commits, Commit{Hash: hash, Message: strings.TrimRight(message, "\n")})
	}

	return commits, nil
}

// startingRef resolves the reference commits are listed from.
func (s *Source) startingRef(ctx context.Context, currentBranch string) (string, error) {
	if currentBranch != s.Branch {
		return "origin/" + s.Branch, nil
	}

	tag, err := s.Exec.Run(ctx, "describe", "--tags", "--abbrev=0")
	if err == nil {
		return strings.TrimSpace(tag), nil
	}

	// No tag is not an error: fall back to the repository's first commit.
	fmt.Fprintf(s.warningWriter(),
		"Warning: no tag found on %s, scanning from the first commit (this may be slow)\n",
		s.Branch)

	roots, err := gitcmd.Lines(ctx, s.Exec, "rev-list", "--max-parents=0", "HEAD")
	if err != nil {
		return "", err
	}
	if len(roots) == 0 {
		return "", fmt.Errorf("resolving root commit: empty rev-list output")
	}
	return roots[0], nil
}

func (s *Source) warningWriter() io.Writer {
	if s.WarningWriter == nil {
		return os.Stderr
	}
	return s.WarningWriter
}
