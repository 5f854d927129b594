package changelog

import (
	"strings"

	"github.com/ariel-frischer/changelog/internal/markdown"
)

// ReleaseInfo is one released version as it appears in the document.
type ReleaseInfo struct {
	Version Version
	Date    string
}

// String formats the release the way `list` displays it.
func (r ReleaseInfo) String() string {
	if r.Date == "" {
		return r.Version.String()
	}
	return r.Version.String() + " - " + r.Date
}

// Releases returns every released version section in document order, which
// by construction is newest first. Pure read, no mutation.
func (d *Document) Releases() []ReleaseInfo {
	var releases []ReleaseInfo

	for _, s := range d.sections {
		if s.Key.Level != 2 {
			continue
		}
		v, err := ParseVersion(s.Key.Title)
		if err != nil {
			continue
		}
		releases = append(releases, ReleaseInfo{
			Version: v,
			Date:    headingDate(d.nodes[s.Start].Text),
		})
	}
	return releases
}

// List returns at most amount released versions, newest first.
func (d *Document) List(amount Amount) []ReleaseInfo {
	releases := d.Releases()
	if amount.All || amount.Count >= len(releases) {
		return releases
	}
	return releases[:amount.Count]
}

// Notes resolves a version token and returns the rendered text of that
// section. The token is a version string, "unreleased", "latest", or empty
// (which defaults to "unreleased"). A SectionNotFoundError is returned when
// no matching section exists.
func (d *Document) Notes(token string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(token))

	switch name {
	case "", "unreleased":
		name = unreleasedTitle
	case "latest":
		releases := d.Releases()
		if len(releases) == 0 {
			return "", &SectionNotFoundError{Section: "latest"}
		}
		name = releases[0].Version.String()
	}

	nodes, ok := d.SectionContents(name)
	if !ok {
		return "", &SectionNotFoundError{Section: token}
	}
	return markdown.Render(nodes), nil
}

// headingDate extracts the date suffix of a released heading such as
// "[1.2.0] - 2024-01-05". Returns "" when the heading carries no date.
func headingDate(text string) string {
	if _, date, ok := strings.Cut(text, " - "); ok {
		return strings.TrimSpace(date)
	}
	return ""
}
