package cli

import "github.com/ariel-frischer/changelog/internal/errors"

// Exit codes for the changelog CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitInvalidArguments indicates invalid or missing command arguments,
	// including an add-style command with no link and no message
	ExitInvalidArguments = 1

	// ExitStructureError indicates a changelog file violating a structural
	// precondition (e.g. no "Unreleased" section)
	ExitStructureError = 2

	// ExitVersionError indicates an unresolvable or out-of-order release version
	ExitVersionError = 3

	// ExitCollaboratorError indicates a failed external collaborator
	// (GitHub link resolution, git, npm)
	ExitCollaboratorError = 4
)

// ExitCode maps an error returned by Execute onto a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		return ExitInvalidArguments
	}

	switch cliErr.Category {
	case errors.Structure:
		return ExitStructureError
	case errors.Version:
		return ExitVersionError
	case errors.Collaborator:
		return ExitCollaboratorError
	default:
		return ExitInvalidArguments
	}
}
