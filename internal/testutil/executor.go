// Package testutil provides test utilities and helpers for bumpgen tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Response is a scripted result for one git command.
type Response struct {
	Output string
	Err    error
}

// GitExecutor is a scripted gitcmd.Executor for tests. Commands are keyed
// by their space-joined argument list. Unscripted commands fail loudly so
// tests never silently depend on real git state.
type GitExecutor struct {
	mu        sync.Mutex
	responses map[string]Response
	records   []CallRecord
}

// NewGitExecutor creates a mock executor with no scripted responses.
func NewGitExecutor() *GitExecutor {
	return &GitExecutor{responses: make(map[string]Response)}
}

// Script registers the response for a command, e.g.
// Script("describe --tags --abbrev=0", "v1.2.0\n", nil).
func (g *GitExecutor) Script(command, output string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses[command] = Response{Output: output, Err: err}
}

// Run returns the scripted response for the command, recording the call.
func (g *GitExecutor) Run(_ context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")

	g.mu.Lock()
	defer g.mu.Unlock()

	resp, ok := g.responses[key]
	record := CallRecord{
		Args:      args,
		Timestamp: time.Now(),
		Response:  resp.Output,
		Error:     resp.Err,
	}

	if !ok {
		record.Error = fmt.Errorf("unscripted git command: %q", key)
		g.records = append(g.records, record)
		return "", record.Error
	}

	g.records = append(g.records, record)
	return resp.Output, resp.Err
}

// Calls returns a copy of all recorded calls in invocation order.
func (g *GitExecutor) Calls() []CallRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]CallRecord, len(g.records))
	copy(out, g.records)
	return out
}

// CalledWith reports whether the command was invoked at least once.
func (g *GitExecutor) CalledWith(command string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.records {
		if strings.Join(r.Args, " ") == command {
			return true
		}
	}
	return false
}
