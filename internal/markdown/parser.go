package markdown

import (
	"regexp"
	"strings"
)

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	listPattern    = regexp.MustCompile(`^\s*-\s+(.*)$`)
	linkDefPattern = regexp.MustCompile(`^\[([^\]]+)\]:\s*(\S+)\s*$`)
)

// Parse converts raw changelog text into an ordered node sequence.
// The parser is total: it never fails, and any line that matches no
// recognized construct becomes a Raw node. Consecutive list item lines are
// kept as individual nodes so single entries can be located and rewritten.
func Parse(text string) []Node {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element, which is an
	// artifact of the split rather than a blank line in the document.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	nodes := make([]Node, 0, len(lines))
	for _, line := range lines {
		nodes = append(nodes, parseLine(line))
	}
	return nodes
}

// parseLine classifies a single line into its node variant.
func parseLine(line string) Node {
	if strings.TrimSpace(line) == "" {
		return Blank()
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		return Heading(len(m[1]), strings.TrimSpace(m[2]))
	}

	if m := linkDefPattern.FindStringSubmatch(line); m != nil {
		return LinkDefinition(m[1], m[2])
	}

	if m := listPattern.FindStringSubmatch(line); m != nil {
		return ListItem(strings.TrimRight(m[1], " \t"))
	}

	return Raw(line)
}
