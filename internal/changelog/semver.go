package changelog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// versionPattern matches a semantic version: three non-negative integers with
// an optional pre-release and/or build suffix.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)((?:-[a-zA-Z0-9.-]+)?(?:\+[a-zA-Z0-9.-]+)?)$`)

// Version is a parsed semantic version.
type Version struct {
	Major  int
	Minor  int
	Patch  int
	Suffix string // pre-release/build suffix including its leading "-" or "+"
}

// ParseVersion parses a semantic version string. A leading "v" is accepted
// and stripped, so both "v1.2.3" and "1.2.3" are valid input.
func ParseVersion(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimPrefix(s, "v"))
	if m == nil {
		return Version{}, fmt.Errorf("invalid semver %q (expected: X.Y.Z)", s)
	}

	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])

	return Version{Major: major, Minor: minor, Patch: patch, Suffix: m[4]}, nil
}

// String returns the canonical version string without a "v" prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d%s", v.Major, v.Minor, v.Patch, v.Suffix)
}

// Compare returns -1, 0 or 1 when v is less than, equal to, or greater
// than other. Only the numeric components participate in ordering.
func (v Version) Compare(other Version) int {
	for _, pair := range [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// Component identifies which part of a version an increment applies to.
type Component int

const (
	ComponentMajor Component = iota
	ComponentMinor
	ComponentPatch
)

// ParseComponent parses "major", "minor" or "patch".
func ParseComponent(s string) (Component, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return ComponentMajor, nil
	case "minor":
		return ComponentMinor, nil
	case "patch":
		return ComponentPatch, nil
	}
	return 0, fmt.Errorf("invalid version component %q (expected: major, minor or patch)", s)
}

// String returns the component name.
func (c Component) String() string {
	switch c {
	case ComponentMajor:
		return "major"
	case ComponentMinor:
		return "minor"
	default:
		return "patch"
	}
}

// Bump returns a new version with the given component incremented and all
// lower components reset. Any pre-release/build suffix is dropped.
func (v Version) Bump(c Component) Version {
	switch c {
	case ComponentMajor:
		return Version{Major: v.Major + 1}
	case ComponentMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// SelectorKind discriminates the Selector variants.
type SelectorKind int

const (
	// SelectMajor bumps the major component of the latest release.
	SelectMajor SelectorKind = iota
	// SelectMinor bumps the minor component of the latest release.
	SelectMinor
	// SelectPatch bumps the patch component of the latest release.
	SelectPatch
	// SelectInfer resolves against the current package version.
	SelectInfer
	// SelectExplicit uses a user-supplied version as-is.
	SelectExplicit
)

// Selector is a user-supplied release version token, resolved to a concrete
// Version only when a release executes. Explicit is populated for
// SelectExplicit and zero otherwise.
type Selector struct {
	Kind     SelectorKind
	Explicit Version
}

// ParseSelector parses a release selector: one of "major", "minor", "patch",
// "infer", or an explicit semantic version.
func ParseSelector(s string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return Selector{Kind: SelectMajor}, nil
	case "minor":
		return Selector{Kind: SelectMinor}, nil
	case "patch":
		return Selector{Kind: SelectPatch}, nil
	case "infer", "":
		return Selector{Kind: SelectInfer}, nil
	}

	v, err := ParseVersion(s)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid version selector %q (expected: major, minor, patch, infer or X.Y.Z)", s)
	}
	return Selector{Kind: SelectExplicit, Explicit: v}, nil
}

// String returns the selector token.
func (s Selector) String() string {
	switch s.Kind {
	case SelectMajor:
		return "major"
	case SelectMinor:
		return "minor"
	case SelectPatch:
		return "patch"
	case SelectInfer:
		return "infer"
	default:
		return s.Explicit.String()
	}
}

// Amount bounds how many versions the list operation returns.
type Amount struct {
	All   bool
	Count int
}

// ParseAmount parses "all" or a positive integer.
func ParseAmount(s string) (Amount, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return Amount{All: true}, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return Amount{}, fmt.Errorf("invalid amount %q (expected: a positive number or \"all\")", s)
	}
	return Amount{Count: n}, nil
}

// String returns the amount token.
func (a Amount) String() string {
	if a.All {
		return "all"
	}
	return strconv.Itoa(a.Count)
}
