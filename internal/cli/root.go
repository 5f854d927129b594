// Package cli implements the changelog command-line interface.
// Each command lives in its own file and registers itself on the root
// command in an init function. The document model, collaborators and
// configuration are wired together here; no business logic lives in this
// package.
package cli

import (
	"log"
	"path/filepath"

	"github.com/ariel-frischer/changelog/internal/changelog"
	"github.com/ariel-frischer/changelog/internal/config"
	"github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/git"
	"github.com/ariel-frischer/changelog/internal/version"
	"github.com/spf13/cobra"
)

var (
	pwdFlag      string
	filenameFlag string
	debugFlag    bool
)

var rootCmd = &cobra.Command{
	Use:     "changelog",
	Short:   "Make CHANGELOG.md changes easier",
	Long: `changelog maintains a CHANGELOG.md file that follows the Keep a Changelog
convention: an "Unreleased" section accumulating entries, dated version
sections below it, and compare links between versions.

Entries can be written by hand (--message) or resolved from a commit hash,
PR URL or issue URL. Releasing moves the accumulated entries under a new
dated version heading and starts a fresh "Unreleased" section.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(log.Printf)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pwdFlag, "pwd", ".", "The current working directory")
	rootCmd.PersistentFlags().StringVarP(&filenameFlag, "filename", "f", "", "The changelog filename (default \"CHANGELOG.md\")")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// Execute runs the CLI and prints any resulting error in its structured
// form. The returned error is nil on success; main turns it into the
// process exit code via ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintSimpleError(err, errors.Argument)
	}
	return err
}

// loadConfig loads the layered configuration for the working directory.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(pwdFlag)
	if err != nil {
		return nil, errors.Wrap(err, errors.Argument)
	}
	return cfg, nil
}

// changelogFilename resolves the changelog file name: the --filename flag
// when given, the configured name otherwise.
func changelogFilename(cfg *config.Configuration) string {
	if filenameFlag != "" {
		return filenameFlag
	}
	return cfg.Filename
}

// loadDocument loads and parses the changelog for the working directory.
func loadDocument() (*changelog.Document, *config.Configuration, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	doc, err := changelog.Load(filepath.Join(pwdFlag, changelogFilename(cfg)))
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.Structure)
	}
	return doc, cfg, nil
}

// asCommandError maps document model errors onto categorized CLI errors so
// every command surfaces them uniformly.
func asCommandError(err error, filename string) error {
	if err == nil {
		return nil
	}

	switch err.(type) {
	case *changelog.StructureError:
		return errors.MissingUnreleasedSection(filename)
	case *changelog.VersionOrderError, *changelog.ResolutionError:
		return errors.UnresolvableVersion(err)
	case *changelog.SectionNotFoundError:
		return errors.Wrap(err, errors.Argument)
	}
	return errors.Wrap(err, errors.Collaborator)
}
