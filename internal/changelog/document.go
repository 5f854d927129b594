package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/changelog/internal/markdown"
)

// unreleasedTitle is the canonical heading text of the accumulation section.
const unreleasedTitle = "Unreleased"

// standardSections are the Keep a Changelog subsection names, in the order
// the skeleton materializes them.
var standardSections = []string{"Added", "Fixed", "Changed", "Deprecated", "Removed"}

// SectionKey identifies a section by heading level and normalized title.
type SectionKey struct {
	Level int
	Title string
}

// section is one entry of the derived index: the key plus the half-open node
// range [Start, End) the heading owns, including the heading node itself.
type section struct {
	Key   SectionKey
	Start int
	End   int
}

// Document is a parsed changelog file: the node sequence plus the derived
// section index. One Document is constructed per invocation, mutated by at
// most one command, rendered, and discarded.
type Document struct {
	path     string
	nodes    []markdown.Node
	sections []section
}

// Load reads and parses the changelog at path. A missing file yields an
// empty document so that `init` can materialize the skeleton.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{path: path}, nil
		}
		return nil, fmt.Errorf("reading changelog file: %w", err)
	}

	d := &Document{path: path, nodes: markdown.Parse(string(data))}
	d.rebuildIndex()
	return d, nil
}

// FromText parses a document from raw text without a backing file.
func FromText(text string) *Document {
	d := &Document{nodes: markdown.Parse(text)}
	d.rebuildIndex()
	return d
}

// FilePath returns the path the document was loaded from.
func (d *Document) FilePath() string {
	return d.path
}

// Nodes returns the current node sequence. Callers must not mutate it.
func (d *Document) Nodes() []markdown.Node {
	return d.nodes
}

// Render serializes the document back to changelog text.
func (d *Document) Render() string {
	return markdown.Render(d.nodes)
}

// Persist writes the rendered document back to its file, creating parent
// directories as needed.
func (d *Document) Persist() error {
	if d.path == "" {
		return &StructureError{Message: "document has no backing file"}
	}

	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating changelog directory: %w", err)
		}
	}

	if err := os.WriteFile(d.path, []byte(d.Render()), 0o644); err != nil {
		return fmt.Errorf("writing changelog file: %w", err)
	}
	return nil
}

// rebuildIndex derives the section index from the node sequence. A section
// extends from its heading up to the next heading of equal or lower level.
func (d *Document) rebuildIndex() {
	d.sections = d.sections[:0]

	for i, n := range d.nodes {
		if n.Kind != markdown.KindHeading {
			continue
		}

		end := len(d.nodes)
		for j := i + 1; j < len(d.nodes); j++ {
			next := d.nodes[j]
			if next.Kind == markdown.KindHeading && next.Level <= n.Level {
				end = j
				break
			}
		}

		d.sections = append(d.sections, section{
			Key:   SectionKey{Level: n.Level, Title: normalizeTitle(n.Text)},
			Start: i,
			End:   end,
		})
	}
}

// normalizeTitle maps heading text to its lookup form: lowercased, with the
// surrounding link brackets stripped and the " - <date>" suffix of version
// headings removed, so "[1.2.0] - 2024-01-05" and "1.2.0" address the same
// section.
func normalizeTitle(text string) string {
	title := strings.TrimSpace(text)

	if strings.HasPrefix(title, "[") {
		if end := strings.Index(title, "]"); end > 0 {
			title = title[1:end]
		}
	} else if ver, _, ok := strings.Cut(title, " - "); ok {
		// Only a version heading carries a date suffix; prose headings that
		// happen to contain " - " keep their full text.
		if _, err := ParseVersion(ver); err == nil {
			title = ver
		}
	}

	return strings.ToLower(strings.TrimSpace(title))
}

// findSection returns the first section matching level and title (already
// normalized by the caller via normalizeTitle, or a plain lowercase name).
func (d *Document) findSection(level int, title string) (section, bool) {
	for _, s := range d.sections {
		if s.Key.Level == level && s.Key.Title == title {
			return s, true
		}
	}
	return section{}, false
}

// findSubsection returns the first section of the given level and title
// nested inside the parent span.
func (d *Document) findSubsection(parent section, level int, title string) (section, bool) {
	for _, s := range d.sections {
		if s.Start <= parent.Start || s.Start >= parent.End {
			continue
		}
		if s.Key.Level == level && s.Key.Title == title {
			return s, true
		}
	}
	return section{}, false
}

// SectionContents returns the node span owned by the named section,
// including its heading. The lookup is case-insensitive; version sections
// can be addressed by their bare version string. The second return is false
// when no such heading exists.
func (d *Document) SectionContents(name string) ([]markdown.Node, bool) {
	title := normalizeTitle(name)

	// Prefer the level-2 heading, which is where versions and "Unreleased"
	// live; fall back to any level for subsection names like "Added".
	if s, ok := d.findSection(2, title); ok {
		return d.nodes[s.Start:s.End], true
	}
	for _, s := range d.sections {
		if s.Key.Title == title {
			return d.nodes[s.Start:s.End], true
		}
	}
	return nil, false
}

// AddListItemToSection appends a new entry to the named subsection of the
// "Unreleased" section, creating the subsection heading directly under
// "Unreleased" when it does not exist yet. A missing "Unreleased" heading is
// a structural precondition violation and aborts before any mutation.
func (d *Document) AddListItemToSection(sectionName, message string) error {
	unreleased, ok := d.findSection(2, normalizeTitle(unreleasedTitle))
	if !ok {
		return &StructureError{
			Message: `changelog has no "Unreleased" section; run "changelog init" first`,
		}
	}

	sub, ok := d.findSubsection(unreleased, 3, normalizeTitle(sectionName))
	if !ok {
		// Materialize the subsection heading directly under "Unreleased".
		at := unreleased.Start + 1
		d.insertNodes(at, markdown.Blank(), markdown.Heading(3, sectionName))
		d.rebuildIndex()

		unreleased, _ = d.findSection(2, normalizeTitle(unreleasedTitle))
		sub, _ = d.findSubsection(unreleased, 3, normalizeTitle(sectionName))
	}

	at := d.entryInsertionPoint(sub)

	// Keep a blank line between the heading and the first entry.
	insert := []markdown.Node{markdown.ListItem(message)}
	if at == sub.Start+1 {
		insert = append([]markdown.Node{markdown.Blank()}, insert...)
	}
	// And a blank line before whatever follows the new last entry.
	if at < len(d.nodes) && d.nodes[at].Kind != markdown.KindBlank {
		insert = append(insert, markdown.Blank())
	}

	d.insertNodes(at, insert...)
	d.rebuildIndex()
	return nil
}

// entryInsertionPoint returns the node index where a new entry belongs in
// the subsection span: after the last existing list item, or after the
// heading (skipping its separating blank) when the subsection is empty.
func (d *Document) entryInsertionPoint(sub section) int {
	last := -1
	for i := sub.Start + 1; i < sub.End; i++ {
		if d.nodes[i].Kind == markdown.KindListItem {
			last = i
		}
	}
	if last >= 0 {
		return last + 1
	}

	at := sub.Start + 1
	if at < sub.End && d.nodes[at].Kind == markdown.KindBlank {
		at++
	}
	return at
}

// insertNodes splices nodes into the sequence at index i.
func (d *Document) insertNodes(i int, nodes ...markdown.Node) {
	d.nodes = append(d.nodes[:i], append(append([]markdown.Node{}, nodes...), d.nodes[i:]...)...)
}

// Init materializes the canonical changelog skeleton: the title, the intro
// prose, an empty "Unreleased" section and the five standard subsections.
// It is idempotent: a document that already has an "Unreleased" section is
// left untouched, and a title-only document only gains the missing parts.
func (d *Document) Init() {
	if _, ok := d.findSection(2, normalizeTitle(unreleasedTitle)); ok {
		return
	}

	if len(d.nodes) == 0 {
		d.nodes = append(d.nodes,
			markdown.Heading(1, "Changelog"),
			markdown.Blank(),
			markdown.Raw("All notable changes to this project will be documented in this file."),
			markdown.Blank(),
			markdown.Raw("The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.0.0/),"),
			markdown.Raw("and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html)."),
		)
	}

	// The skeleton goes above the first released section, keeping the
	// newest-first section order; on a document without one it goes at the
	// end.
	at := len(d.nodes)
	for i, n := range d.nodes {
		if n.Kind == markdown.KindHeading && n.Level == 2 {
			at = i
			break
		}
	}

	skeleton := unreleasedSkeleton()
	if at > 0 && d.nodes[at-1].Kind != markdown.KindBlank {
		skeleton = append([]markdown.Node{markdown.Blank()}, skeleton...)
	}
	if at == len(d.nodes) {
		// Drop the trailing blank the skeleton carries for mid-document use.
		skeleton = skeleton[:len(skeleton)-1]
	}

	d.insertNodes(at, skeleton...)
	d.rebuildIndex()
}

// unreleasedSkeleton returns the nodes of a fresh empty "Unreleased" section
// with the standard subsections, ending with a separating blank line.
func unreleasedSkeleton() []markdown.Node {
	nodes := []markdown.Node{
		markdown.Heading(2, "["+unreleasedTitle+"]"),
		markdown.Blank(),
	}
	for _, name := range standardSections {
		nodes = append(nodes, markdown.Heading(3, name), markdown.Blank())
	}
	return nodes
}
