package cli

import (
	"fmt"

	"github.com/ariel-frischer/changelog/internal/output"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new CHANGELOG.md file, if it doesn't exist yet",
	Long: `Initialize a changelog file with the standard Keep a Changelog structure:
a title, an empty "Unreleased" section and the five standard subsections
(Added, Fixed, Changed, Deprecated, Removed).

Running init on an existing changelog is a no-op, so it is always safe.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	doc, cfg, err := loadDocument()
	if err != nil {
		return err
	}

	before := doc.Render()
	doc.Init()

	if doc.Render() == before {
		output.Print(cmd.OutOrStdout(),
			fmt.Sprintf("%s is already initialized", output.Accent(changelogFilename(cfg))))
		return nil
	}

	if err := doc.Persist(); err != nil {
		return asCommandError(err, changelogFilename(cfg))
	}

	output.Print(cmd.OutOrStdout(),
		fmt.Sprintf("Initialized %s", output.Accent(doc.FilePath())))
	return nil
}
