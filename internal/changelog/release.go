package changelog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ariel-frischer/changelog/internal/markdown"
)

// ReleaseOptions carries the external state a release transition depends on.
// Keeping it explicit makes selector resolution a pure function of its
// arguments instead of a hidden lookup.
type ReleaseOptions struct {
	// PackageVersion is the current version from package metadata, or ""
	// when no metadata is available. Consumed by the infer selector.
	PackageVersion string

	// InferBump is the component the infer selector increments when the
	// package version does not point past the latest release.
	InferBump Component

	// Today is the release date stamped into the new version heading.
	Today time.Time
}

// Release performs the version release transition: the "Unreleased" heading
// becomes a dated version heading, a fresh empty "Unreleased" section is
// inserted above it, and the compare-link definitions are updated when the
// document already carries that convention.
//
// The transition is all-or-nothing: every validation failure returns before
// the node sequence is touched, so a failed release leaves the document
// exactly as parsed.
func (d *Document) Release(sel Selector, opts ReleaseOptions) (Version, error) {
	unreleased, ok := d.findSection(2, normalizeTitle(unreleasedTitle))
	if !ok {
		return Version{}, &StructureError{
			Message: `changelog has no "Unreleased" section; run "changelog init" first`,
		}
	}

	latest, hasLatest := d.latestReleasedVersion()

	version, err := resolveSelector(sel, latest, hasLatest, opts)
	if err != nil {
		return Version{}, err
	}

	nodes := slices.Clone(d.nodes)

	// Freeze the accumulated entries under the new dated heading, keeping
	// the bracket style the document already uses.
	heading := &nodes[unreleased.Start]
	bracketed := strings.HasPrefix(strings.TrimSpace(heading.Text), "[")
	heading.Text = releasedHeadingText(version, opts.Today, bracketed)

	// A fresh empty "Unreleased" section goes directly above it so
	// accumulation can resume immediately.
	fresh := unreleasedSkeleton()
	if !bracketed {
		fresh[0].Text = unreleasedTitle
	}
	nodes = slices.Insert(nodes, unreleased.Start, fresh...)

	nodes = updateCompareLinks(nodes, version, latest, hasLatest)

	d.nodes = nodes
	d.rebuildIndex()
	return version, nil
}

// releasedHeadingText formats the heading of a freshly released section.
func releasedHeadingText(v Version, today time.Time, bracketed bool) string {
	date := today.Format("2006-01-02")
	if bracketed {
		return fmt.Sprintf("[%s] - %s", v, date)
	}
	return fmt.Sprintf("%s - %s", v, date)
}

// resolveSelector turns a selector into the concrete version to release.
//
// Explicit versions must be strictly greater than the latest release. The
// component selectors bump the latest release (or the package version when
// the changelog has none). Infer releases the package version when it points
// past the latest release, and otherwise bumps the configured component.
func resolveSelector(sel Selector, latest Version, hasLatest bool, opts ReleaseOptions) (Version, error) {
	switch sel.Kind {
	case SelectExplicit:
		if hasLatest && sel.Explicit.Compare(latest) <= 0 {
			return Version{}, &VersionOrderError{Proposed: sel.Explicit, Latest: latest}
		}
		return sel.Explicit, nil

	case SelectMajor, SelectMinor, SelectPatch:
		base, ok := latest, hasLatest
		if !ok {
			if pkg, err := ParseVersion(opts.PackageVersion); err == nil {
				base, ok = pkg, true
			}
		}
		if !ok {
			base = Version{} // 0.0.0
		}
		component := map[SelectorKind]Component{
			SelectMajor: ComponentMajor,
			SelectMinor: ComponentMinor,
			SelectPatch: ComponentPatch,
		}[sel.Kind]
		return base.Bump(component), nil

	case SelectInfer:
		pkg, pkgErr := ParseVersion(opts.PackageVersion)

		if !hasLatest {
			if pkgErr != nil {
				return Version{}, &ResolutionError{
					Reason: "no released versions in the changelog and no package version to infer from",
				}
			}
			return pkg, nil
		}

		if pkgErr == nil && pkg.Compare(latest) > 0 {
			return pkg, nil
		}
		return latest.Bump(opts.InferBump), nil
	}

	return Version{}, &ResolutionError{Reason: fmt.Sprintf("unknown selector %v", sel.Kind)}
}

// latestReleasedVersion returns the highest version among the released
// level-2 headings, or false when the document has none.
func (d *Document) latestReleasedVersion() (Version, bool) {
	var latest Version
	found := false

	for _, s := range d.sections {
		if s.Key.Level != 2 {
			continue
		}
		v, err := ParseVersion(s.Key.Title)
		if err != nil {
			continue
		}
		if !found || v.Compare(latest) > 0 {
			latest = v
			found = true
		}
	}
	return latest, found
}

// updateCompareLinks rewrites the reference-style compare links for a new
// release: the "Unreleased" definition now diffs from the new version's tag,
// and a definition for the new version diffs from the previous one. The host
// URL template and tag prefix are taken from the definitions already present;
// when the document carries no compare-link convention, nothing is emitted.
func updateCompareLinks(nodes []markdown.Node, version, previous Version, hasPrevious bool) []markdown.Node {
	idx, template := findCompareTemplate(nodes)
	if template == "" {
		return nodes
	}

	base, rest, ok := strings.Cut(template, "/compare/")
	if !ok {
		return nodes
	}
	tag := "v"
	if !strings.HasPrefix(rest, "v") {
		tag = ""
	}

	newDef := markdown.LinkDefinition(
		version.String(),
		fmt.Sprintf("%s/compare/%s%s...%s%s", base, tag, previous, tag, version),
	)
	if !hasPrevious {
		newDef = markdown.LinkDefinition(
			version.String(),
			fmt.Sprintf("%s/releases/tag/%s%s", base, tag, version),
		)
	}

	unreleasedDef := markdown.LinkDefinition(
		unreleasedTitle,
		fmt.Sprintf("%s/compare/%s%s...HEAD", base, tag, version),
	)

	if unrel := findLinkDefinition(nodes, unreleasedTitle); unrel >= 0 {
		nodes[unrel].URL = unreleasedDef.URL
		return slices.Insert(nodes, unrel+1, newDef)
	}

	// No "Unreleased" definition yet: materialize it together with the new
	// version's, above the template definition they were derived from.
	return slices.Insert(nodes, idx, unreleasedDef, newDef)
}

// findCompareTemplate locates a link definition carrying a "/compare/" URL
// and returns its index and URL. The "Unreleased" definition wins when
// present since it always reflects the current convention.
func findCompareTemplate(nodes []markdown.Node) (int, string) {
	if i := findLinkDefinition(nodes, unreleasedTitle); i >= 0 && strings.Contains(nodes[i].URL, "/compare/") {
		return i, nodes[i].URL
	}
	for i, n := range nodes {
		if n.Kind == markdown.KindLinkDefinition && strings.Contains(n.URL, "/compare/") {
			return i, n.URL
		}
	}
	return -1, ""
}

// findLinkDefinition returns the index of the link definition with the given
// label (case-insensitive), or -1.
func findLinkDefinition(nodes []markdown.Node, label string) int {
	for i, n := range nodes {
		if n.Kind == markdown.KindLinkDefinition && strings.EqualFold(n.Label, label) {
			return i
		}
	}
	return -1
}
