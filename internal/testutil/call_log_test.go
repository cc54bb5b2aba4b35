package testutil

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitExecutor_ScriptedResponse(t *testing.T) {
	exec := NewGitExecutor()
	exec.Script("describe --tags --abbrev=0", "v1.2.0\n", nil)

	out, err := exec.Run(context.Background(), "describe", "--tags", "--abbrev=0")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0\n", out)
	assert.True(t, exec.CalledWith("describe --tags --abbrev=0"))
}

func TestGitExecutor_UnscriptedCommandFails(t *testing.T) {
	exec := NewGitExecutor()

	_, err := exec.Run(context.Background(), "rev-list", "HEAD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unscripted git command")
}

func TestCallLog_WriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.yml")

	records := []CallRecord{
		{
			Args:      []string{"rev-list", "--max-parents=0", "HEAD"},
			Timestamp: time.Now(),
			Response:  "abc123\n",
		},
		{
			Args:      []string{"describe", "--tags", "--abbrev=0"},
			Timestamp: time.Now(),
			Error:     errors.New("fatal: no names found"),
		},
	}

	require.NoError(t, WriteCallLog(path, records))

	log, err := ReadCallLog(path)
	require.NoError(t, err)
	require.Len(t, log.Entries, 2)

	assert.Equal(t, records[0].Args, log.Entries[0].Args)
	assert.Equal(t, "abc123\n", log.Entries[0].Response)
	assert.False(t, log.Entries[0].HasError())

	assert.True(t, log.Entries[1].HasError())
	assert.Contains(t, log.Entries[1].Error, "no names found")
}
