// Package cli tests drive the cobra commands directly with captured output
// buffers. They cannot run in parallel because they share the global rootCmd.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierrors "github.com/ariel-frischer/changelog/internal/errors"
)

// runCommand executes the CLI against dir and returns the combined output.
// Global flag state is reset afterwards so tests stay independent.
func runCommand(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--pwd", dir}, args...))

	err := rootCmd.Execute()
	resetFlags(t)
	return buf.String(), err
}

// resetFlags restores the package-level flag state mutated by Execute.
func resetFlags(t *testing.T) {
	t.Helper()

	pwdFlag = "."
	filenameFlag = ""
	debugFlag = false
	listAmountFlag = ""
	listAllFlag = false
	withNpmFlag = false

	for _, cmd := range rootCmd.Commands() {
		if f := cmd.Flags().Lookup("message"); f != nil {
			require.NoError(t, f.Value.Set(""))
		}
		cmd.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
	}
	rootCmd.PersistentFlags().Visit(func(f *pflag.Flag) { f.Changed = false })
}

// readChangelog reads the changelog file the command under test wrote.
func readChangelog(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, err)
	return string(data)
}

func TestCommandRegistration(t *testing.T) {
	expected := []string{"init", "add", "fix", "change", "deprecate", "remove", "release", "notes", "list"}

	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, names[name], "command %s should be registered", name)
	}
}

func TestEntryCommandFlags(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		switch cmd.Name() {
		case "add", "fix", "change", "deprecate", "remove":
			f := cmd.Flags().Lookup("message")
			require.NotNil(t, f, "%s should have a --message flag", cmd.Name())
			assert.Equal(t, "m", f.Shorthand)
		}
	}
}

func TestPersistentFlags(t *testing.T) {
	tests := map[string]struct {
		flagName string
		defValue string
	}{
		"pwd":      {flagName: "pwd", defValue: "."},
		"filename": {flagName: "filename", defValue: ""},
		"debug":    {flagName: "debug", defValue: "false"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := rootCmd.PersistentFlags().Lookup(tt.flagName)
			require.NotNil(t, f)
			assert.Equal(t, tt.defValue, f.DefValue)
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected int
	}{
		"nil":           {err: nil, expected: ExitSuccess},
		"plain error":   {err: os.ErrNotExist, expected: ExitInvalidArguments},
		"missing input": {err: clierrors.MissingEntryInput("add"), expected: ExitInvalidArguments},
		"structure":     {err: clierrors.MissingUnreleasedSection("CHANGELOG.md"), expected: ExitStructureError},
		"version":       {err: clierrors.UnresolvableVersion(os.ErrInvalid), expected: ExitVersionError},
		"collaborator":  {err: clierrors.Wrap(os.ErrInvalid, clierrors.Collaborator), expected: ExitCollaboratorError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}
