// Package output provides terminal output formatting utilities for the
// changelog CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	accent  = color.New(color.FgBlue, color.Bold).SprintFunc()
	success = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Accent styles a token the way the CLI highlights arguments and section
// names (bold blue). Falls back to plain text on dumb terminals.
func Accent(s string) string {
	return accent(s)
}

// Success styles a token the way the CLI highlights freshly added content
// (bold green).
func Success(s string) string {
	return success(s)
}

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintRule prints a dim horizontal rule with a centered label, used to
// frame an excerpt of the changelog file in command output.
func PrintRule(w io.Writer, label string) {
	termWidth := GetTerminalWidth()
	dim := color.New(color.Faint).SprintFunc()

	label = " " + label + " "
	lineLen := (termWidth - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	fmt.Fprintf(w, "%s%s%s\n", dim(line), dim(label), dim(line))
}

// Print writes a status line to the writer.
func Print(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}

// PrintIndented writes a block of text with every line indented, the way
// the CLI echoes the section a new entry just landed in.
func PrintIndented(w io.Writer, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprintf(w, "    %s\n", line)
	}
}
