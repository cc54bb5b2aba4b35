package cli

// Exit codes for the bumpgen CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure during generation
	ExitFailure = 1

	// ExitConfigError indicates malformed or missing configuration
	ExitConfigError = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitGitError indicates a failing git invocation
	ExitGitError = 4
)
