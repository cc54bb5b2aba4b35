package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSSHURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"scp style", "git@github.com:user/repo.git", true},
		{"ssh scheme", "ssh://git@github.com/user/repo.git", true},
		{"git+ssh scheme", "git+ssh://git@github.com/user/repo.git", true},
		{"https", "https://github.com/user/repo.git", false},
		{"http", "http://github.com/user/repo.git", false},
		{"local path", "/home/user/repo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSSHURL(tt.url))
		})
	}
}

func TestGetAuthForURL_HTTPSWithToken(t *testing.T) {
	t.Setenv("GIT_USERNAME", "")
	t.Setenv("GIT_PASSWORD", "")
	t.Setenv("GITHUB_TOKEN", "ghp_testtoken")

	auth := getAuthForURL("https://github.com/user/repo.git")
	assert.NotNil(t, auth)
}

func TestGetAuthForURL_NoCredentials(t *testing.T) {
	t.Setenv("GIT_USERNAME", "")
	t.Setenv("GIT_PASSWORD", "")
	t.Setenv("GITHUB_TOKEN", "")

	auth := getAuthForURL("https://github.com/user/repo.git")
	assert.Nil(t, auth)
}

func TestIsSSHAgentAvailable(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")
	assert.False(t, isSSHAgentAvailable())

	t.Setenv("SSH_AUTH_SOCK", "/tmp/agent.sock")
	assert.True(t, isSSHAgentAvailable())
}
