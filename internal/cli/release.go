package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ariel-frischer/changelog/internal/changelog"
	"github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/git"
	"github.com/ariel-frischer/changelog/internal/npm"
	"github.com/ariel-frischer/changelog/internal/output"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var withNpmFlag bool

var releaseCmd = &cobra.Command{
	Use:   "release [<version>]",
	Short: "Release a new version",
	Long: `Release a new version: the "Unreleased" section is frozen under a dated
version heading, a fresh "Unreleased" section is created above it, and the
compare links are updated when the changelog carries them.

The version argument can be "major", "minor", "patch", "infer" (resolve
against the package.json version; the default) or an explicit version such
as "1.2.3". Explicit versions must be greater than the latest release.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.Flags().BoolVar(&withNpmFlag, "with-npm", false,
		"Commit the changelog and run `npm version <version>` after releasing")
}

func runRelease(cmd *cobra.Command, args []string) error {
	token := ""
	if len(args) == 1 {
		token = args[0]
	}
	sel, err := changelog.ParseSelector(token)
	if err != nil {
		return errors.Wrap(err, errors.Argument)
	}

	doc, cfg, err := loadDocument()
	if err != nil {
		return err
	}

	inferBump, err := changelog.ParseComponent(cfg.InferBump)
	if err != nil {
		return errors.Wrap(err, errors.Argument)
	}

	// The package version is optional input: without package metadata the
	// infer selector falls back to bumping the latest released version.
	pkgVersion, _ := npm.CurrentVersion(pwdFlag)

	out := cmd.OutOrStdout()
	output.Print(out, fmt.Sprintf("Releasing %s", output.Success(sel.String())))

	version, err := doc.Release(sel, changelog.ReleaseOptions{
		PackageVersion: pkgVersion,
		InferBump:      inferBump,
		Today:          time.Now(),
	})
	if err != nil {
		return asCommandError(err, changelogFilename(cfg))
	}

	if err := doc.Persist(); err != nil {
		return asCommandError(err, changelogFilename(cfg))
	}

	output.Print(out, fmt.Sprintf("Released %s", output.Success(version.String())))

	if withNpmFlag {
		if err := syncWithNpm(cmd.Context(), doc.FilePath(), version); err != nil {
			return err
		}
	}
	return nil
}

// syncWithNpm commits the changelog file and delegates the package version
// bump to npm. It runs strictly after the changelog file was persisted, so
// a failure here never corrupts the document.
func syncWithNpm(ctx context.Context, changelogPath string, version changelog.Version) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithSuffix(" committing changelog and bumping package version..."))
	s.Start()
	defer s.Stop()

	repo, err := git.Open(pwdFlag)
	if err != nil {
		return errors.Wrap(err, errors.Collaborator)
	}
	if err := repo.Stage(changelogPath); err != nil {
		return errors.Wrap(err, errors.Collaborator)
	}
	if err := repo.Commit("update changelog"); err != nil {
		return errors.Wrap(err, errors.Collaborator)
	}

	if err := npm.SetVersion(ctx, pwdFlag, version.String()); err != nil {
		return errors.Wrap(err, errors.Collaborator,
			"The changelog was released and committed; only the npm version bump failed",
			fmt.Sprintf("Run `npm version %s` by hand to finish", version))
	}
	return nil
}
