package markdown

import "strings"

// Render writes the node sequence back out as changelog text.
// Each node maps to exactly one line in its canonical form; Raw nodes pass
// through verbatim. The output always ends with a single trailing newline so
// the file stays friendly to line-oriented tools.
//
// Render is the inverse of Parse: for any nodes produced by Parse,
// Parse(Render(nodes)) yields an equal sequence.
func Render(nodes []Node) string {
	if len(nodes) == 0 {
		return ""
	}

	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.String())
		b.WriteString("\n")
	}
	return b.String()
}
