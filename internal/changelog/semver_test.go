package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Version
		wantErr  bool
	}{
		"plain":           {input: "1.2.3", expected: Version{Major: 1, Minor: 2, Patch: 3}},
		"v prefix":        {input: "v1.2.3", expected: Version{Major: 1, Minor: 2, Patch: 3}},
		"zeros":           {input: "0.0.0", expected: Version{}},
		"pre-release":     {input: "1.0.0-beta.1", expected: Version{Major: 1, Suffix: "-beta.1"}},
		"build metadata":  {input: "1.0.0+20240105", expected: Version{Major: 1, Suffix: "+20240105"}},
		"missing patch":   {input: "1.2", wantErr: true},
		"extra component": {input: "1.2.3.4", wantErr: true},
		"not a version":   {input: "latest", wantErr: true},
		"empty":           {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := map[string]struct {
		a, b     string
		expected int
	}{
		"equal":         {a: "1.2.3", b: "1.2.3", expected: 0},
		"major wins":    {a: "2.0.0", b: "1.9.9", expected: 1},
		"minor wins":    {a: "1.3.0", b: "1.2.9", expected: 1},
		"patch wins":    {a: "1.2.4", b: "1.2.3", expected: 1},
		"less than":     {a: "0.9.0", b: "1.0.0", expected: -1},
		"suffix ignored": {a: "1.0.0-beta", b: "1.0.0", expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := ParseVersion(tt.a)
			require.NoError(t, err)
			b, err := ParseVersion(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.Compare(b))
		})
	}
}

func TestVersionBump(t *testing.T) {
	base := Version{Major: 1, Minor: 2, Patch: 3, Suffix: "-rc.1"}

	assert.Equal(t, "2.0.0", base.Bump(ComponentMajor).String())
	assert.Equal(t, "1.3.0", base.Bump(ComponentMinor).String())
	assert.Equal(t, "1.2.4", base.Bump(ComponentPatch).String())
}

func TestParseSelector(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Selector
		wantErr  bool
	}{
		"major":        {input: "major", expected: Selector{Kind: SelectMajor}},
		"minor":        {input: "minor", expected: Selector{Kind: SelectMinor}},
		"patch":        {input: "patch", expected: Selector{Kind: SelectPatch}},
		"infer":        {input: "infer", expected: Selector{Kind: SelectInfer}},
		"empty means infer": {input: "", expected: Selector{Kind: SelectInfer}},
		"mixed case":   {input: "Major", expected: Selector{Kind: SelectMajor}},
		"explicit": {
			input:    "2.1.0",
			expected: Selector{Kind: SelectExplicit, Explicit: Version{Major: 2, Minor: 1}},
		},
		"garbage": {input: "next", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sel, err := ParseSelector(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sel)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Amount
		wantErr  bool
	}{
		"number":   {input: "10", expected: Amount{Count: 10}},
		"one":      {input: "1", expected: Amount{Count: 1}},
		"all":      {input: "all", expected: Amount{All: true}},
		"ALL":      {input: "ALL", expected: Amount{All: true}},
		"zero":     {input: "0", wantErr: true},
		"negative": {input: "-3", wantErr: true},
		"garbage":  {input: "many", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}
