package changelog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiVersionChangelog() *Document {
	var b strings.Builder
	b.WriteString("# Changelog\n\n## [Unreleased]\n")
	for i := 5; i >= 1; i-- {
		fmt.Fprintf(&b, "\n## [0.%d.0] - 2024-01-0%d\n\n### Added\n\n- entry %d\n", i, i, i)
	}
	return FromText(b.String())
}

func TestList(t *testing.T) {
	d := multiVersionChangelog()

	tests := map[string]struct {
		amount   Amount
		expected []string
	}{
		"bounded": {
			amount:   Amount{Count: 2},
			expected: []string{"0.5.0 - 2024-01-05", "0.4.0 - 2024-01-04"},
		},
		"all": {
			amount: Amount{All: true},
			expected: []string{
				"0.5.0 - 2024-01-05", "0.4.0 - 2024-01-04", "0.3.0 - 2024-01-03",
				"0.2.0 - 2024-01-02", "0.1.0 - 2024-01-01",
			},
		},
		"amount larger than document": {
			amount: Amount{Count: 100},
			expected: []string{
				"0.5.0 - 2024-01-05", "0.4.0 - 2024-01-04", "0.3.0 - 2024-01-03",
				"0.2.0 - 2024-01-02", "0.1.0 - 2024-01-01",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			releases := d.List(tt.amount)
			got := make([]string, len(releases))
			for i, r := range releases {
				got[i] = r.String()
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestList_UnreleasedExcluded(t *testing.T) {
	d := FromText("# Changelog\n\n## [Unreleased]\n\n### Added\n\n- pending\n")
	assert.Empty(t, d.List(Amount{All: true}))
}

func TestNotes(t *testing.T) {
	d := multiVersionChangelog()

	tests := map[string]struct {
		token    string
		contains string
		wantErr  bool
	}{
		"explicit version":    {token: "0.3.0", contains: "- entry 3"},
		"latest":              {token: "latest", contains: "- entry 5"},
		"unreleased":          {token: "unreleased", contains: "[Unreleased]"},
		"defaults to unreleased": {token: "", contains: "[Unreleased]"},
		"case-insensitive":    {token: "UNRELEASED", contains: "[Unreleased]"},
		"missing version":     {token: "9.9.9", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			notes, err := d.Notes(tt.token)
			if tt.wantErr {
				var notFound *SectionNotFoundError
				assert.ErrorAs(t, err, &notFound)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, notes, tt.contains)
		})
	}
}

func TestNotes_LatestOnEmptyChangelog(t *testing.T) {
	d := FromText("# Changelog\n\n## [Unreleased]\n")

	_, err := d.Notes("latest")
	var notFound *SectionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestNotes_AfterRelease(t *testing.T) {
	d := FromText(sampleChangelog)

	v, err := d.Release(Selector{Kind: SelectInfer}, defaultOpts())
	require.NoError(t, err)

	latest, err := d.Notes("latest")
	require.NoError(t, err)
	assert.Contains(t, latest, v.String())
	assert.Contains(t, latest, "- old")

	unreleased, err := d.Notes("unreleased")
	require.NoError(t, err)
	assert.NotContains(t, unreleased, "- old")
}
