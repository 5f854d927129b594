package errors

import "fmt"

// Common error messages for the changelog CLI.
// These templates ensure consistent, actionable error messages.

// MissingEntryInput creates an error for an add-style command invoked with
// neither a link argument nor a --message flag.
func MissingEntryInput(command string) *CLIError {
	return NewArgumentErrorWithUsage(
		"no <LINK>, <COMMIT HASH> or --message provided",
		fmt.Sprintf("changelog %s [<link> | --message <text>]", command),
		fmt.Sprintf("Pass a commit hash, PR or issue URL: changelog %s https://github.com/owner/repo/pull/123", command),
		fmt.Sprintf("Or write the entry yourself: changelog %s --message \"Describe the change\"", command),
		fmt.Sprintf("Run 'changelog %s --help' for more info", command),
	)
}

// MissingUnreleasedSection creates an error for a changelog file without the
// required "Unreleased" heading.
func MissingUnreleasedSection(filename string) *CLIError {
	return NewStructureError(
		fmt.Sprintf("%s has no \"Unreleased\" section", filename),
		"Run 'changelog init' to create the standard structure",
		"Or add a '## [Unreleased]' heading to the file by hand",
	)
}

// UnresolvableVersion creates an error for a release selector that cannot be
// resolved to a concrete version.
func UnresolvableVersion(err error) *CLIError {
	return Wrap(err, Version,
		"Pass an explicit version: changelog release 1.2.3",
		"Or pass a component to bump: changelog release patch",
	)
}

// SectionNotFound creates an error for a notes lookup on a version that does
// not exist in the changelog.
func SectionNotFound(version string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no changelog section for %q", version),
		"Run 'changelog list --all' to see the released versions",
		"Use 'unreleased' or 'latest' for the newest sections",
	)
}
