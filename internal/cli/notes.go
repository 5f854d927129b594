package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/ariel-frischer/changelog/internal/changelog"
	"github.com/ariel-frischer/changelog/internal/errors"
	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes [<version>]",
	Short: "Get the release notes of a specific version (or unreleased)",
	Long: `Print the changelog section of a version. The argument is a version
such as "1.2.3", or one of "unreleased" and "latest". Without an argument
the unreleased section is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotes,
}

func init() {
	rootCmd.AddCommand(notesCmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	token := ""
	if len(args) == 1 {
		token = args[0]
	}

	doc, _, err := loadDocument()
	if err != nil {
		return err
	}

	notes, err := doc.Notes(token)
	if err != nil {
		var notFound *changelog.SectionNotFoundError
		if stderrors.As(err, &notFound) {
			return errors.SectionNotFound(notFound.Section)
		}
		return errors.Wrap(err, errors.Argument)
	}

	fmt.Fprint(cmd.OutOrStdout(), notes)
	return nil
}
