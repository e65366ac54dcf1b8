package cli

import (
	stderrors "errors"

	"github.com/heymumford/ftoc-sub003/internal/errors"
	"github.com/heymumford/ftoc-sub003/internal/manifest"
)

// Exit codes for the relnotes CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeError indicates a general execution failure
	ExitRuntimeError = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 2

	// ExitVersionNotFound indicates the manifest lacks a resolvable version
	ExitVersionNotFound = 3

	// ExitRepository indicates the git repository could not be read
	ExitRepository = 4
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var notFound *manifest.VersionNotFoundError
	if stderrors.As(err, &notFound) {
		return ExitVersionNotFound
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Argument, errors.Configuration:
			return ExitInvalidArguments
		case errors.Manifest:
			return ExitVersionNotFound
		case errors.Repository:
			return ExitRepository
		}
	}

	return ExitRuntimeError
}
