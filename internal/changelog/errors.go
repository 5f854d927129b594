package changelog

import "fmt"

// StructureError reports a document that violates a structural precondition,
// such as a missing "Unreleased" heading. Operations detect it before any
// mutation, so the document is never left half-rewritten.
type StructureError struct {
	Message string
}

func (e *StructureError) Error() string {
	return e.Message
}

// SectionNotFoundError is returned when a requested section heading does not
// exist in the document.
type SectionNotFoundError struct {
	Section string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found", e.Section)
}

// VersionOrderError is returned when an explicit release version is not
// strictly greater than the latest released version.
type VersionOrderError struct {
	Proposed Version
	Latest   Version
}

func (e *VersionOrderError) Error() string {
	return fmt.Sprintf("version %s is not greater than the latest released version %s",
		e.Proposed, e.Latest)
}

// ResolutionError is returned when a version selector cannot be resolved to
// a concrete version.
type ResolutionError struct {
	Reason string
}

func (e *ResolutionError) Error() string {
	return "cannot resolve release version: " + e.Reason
}
