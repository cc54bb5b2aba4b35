// Package gitcmd runs git CLI commands and returns their output as text.
// It covers the history-walk operations (rev-list, log, diff) that the
// go-git library does not serve well; see internal/git for the go-git side.
package gitcmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor runs a git subcommand and returns its standard output.
// Implementations must return a non-nil error for any non-zero exit.
type Executor interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CLI is the production Executor backed by the git binary.
// Dir is passed via `git -C` so no command depends on the process
// working directory.
type CLI struct {
	Dir string
}

// NewCLI returns an Executor that runs git commands in the given directory.
func NewCLI(dir string) *CLI {
	return &CLI{Dir: dir}
}

// Run executes `git -C <dir> <args...>` and returns stdout.
// Stderr is captured and folded into the error on failure so callers
// can surface the underlying git message verbatim.
func (c *CLI) Run(ctx context.Context, args ...string) (string, error) {
	full := append([]string{"-C", c.Dir}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), msg, err)
	}

	return stdout.String(), nil
}

// Lines runs the command and splits its output into trimmed non-empty lines.
func Lines(ctx context.Context, e Executor, args ...string) ([]string, error) {
	out, err := e.Run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
