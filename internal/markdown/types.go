// Package markdown provides the minimal markdown model used by changelog files.
// It recognizes only the constructs the Keep a Changelog convention relies on
// (headings, list items, reference-style link definitions, blank lines) and
// preserves every other line verbatim, so re-rendering a parsed document never
// corrupts content the parser did not understand.
package markdown

import "fmt"

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindHeading is an ATX heading (# through ######).
	KindHeading Kind = iota
	// KindListItem is a single "- " list entry line.
	KindListItem
	// KindLinkDefinition is a reference-style link target ("[label]: url").
	KindLinkDefinition
	// KindBlank is an empty line.
	KindBlank
	// KindRaw is any line that matched no recognized construct.
	KindRaw
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	case KindLinkDefinition:
		return "link-definition"
	case KindBlank:
		return "blank"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Node is one line of a changelog document. Exactly one variant is populated,
// selected by Kind. Nodes are value types; two nodes are equal when all their
// fields are equal, which is what the round-trip tests rely on.
type Node struct {
	Kind Kind

	// Level is the heading level (1-6). Only set for KindHeading.
	Level int
	// Text is the heading text, list item text, or raw line contents.
	Text string
	// Label and URL are only set for KindLinkDefinition.
	Label string
	URL   string
}

// Heading constructs a heading node.
func Heading(level int, text string) Node {
	return Node{Kind: KindHeading, Level: level, Text: text}
}

// ListItem constructs a list item node.
func ListItem(text string) Node {
	return Node{Kind: KindListItem, Text: text}
}

// LinkDefinition constructs a reference-style link definition node.
func LinkDefinition(label, url string) Node {
	return Node{Kind: KindLinkDefinition, Label: label, URL: url}
}

// Blank constructs a blank line node.
func Blank() Node {
	return Node{Kind: KindBlank}
}

// Raw constructs a verbatim passthrough node.
func Raw(text string) Node {
	return Node{Kind: KindRaw, Text: text}
}

// String renders the node in its canonical single-line form, without a
// trailing newline. This is the same form Render emits.
func (n Node) String() string {
	switch n.Kind {
	case KindHeading:
		return headingMarker(n.Level) + " " + n.Text
	case KindListItem:
		return "- " + n.Text
	case KindLinkDefinition:
		return fmt.Sprintf("[%s]: %s", n.Label, n.URL)
	case KindBlank:
		return ""
	default:
		return n.Text
	}
}

func headingMarker(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return "######"[:level]
}
