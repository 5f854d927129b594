// Package changelog implements the Keep a Changelog document model: loading
// and parsing CHANGELOG.md into a flat node sequence with a derived section
// index, section-scoped mutations (entry insertion, version release), read
// queries (notes, version listing), and faithful re-rendering.
//
// The document is a flat []markdown.Node rather than a tree. Sections are
// addressed through an index mapping a heading's level and normalized title
// to the contiguous node span it owns (the heading itself up to the next
// heading of equal or lower level). The index is a cache: it is rebuilt after
// every structural mutation and owns no truth of its own.
//
// Mutating operations are all-or-nothing. They validate preconditions first,
// apply changes to a copy of the node sequence where partial failure is
// possible, and only then swap the copy in.
package changelog
