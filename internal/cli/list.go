package cli

import (
	"fmt"
	"strconv"

	"github.com/ariel-frischer/changelog/internal/changelog"
	"github.com/ariel-frischer/changelog/internal/errors"
	"github.com/spf13/cobra"
)

var (
	listAmountFlag string
	listAllFlag    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Get a list of all versions",
	Long: `Print the released versions in the changelog, newest first, as
"version - date" lines. The amount of versions shown is bounded by
--amount (or the configured default); --all lifts the bound.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listAmountFlag, "amount", "a", "", "Amount of versions to show, or \"all\"")
	listCmd.Flags().BoolVar(&listAllFlag, "all", false, "Shorthand for --amount all")
	listCmd.MarkFlagsMutuallyExclusive("amount", "all")
}

func runList(cmd *cobra.Command, args []string) error {
	doc, cfg, err := loadDocument()
	if err != nil {
		return err
	}

	amount := changelog.Amount{All: listAllFlag}
	if !listAllFlag {
		token := listAmountFlag
		if token == "" {
			token = strconv.Itoa(cfg.ListAmount)
		}
		amount, err = changelog.ParseAmount(token)
		if err != nil {
			return errors.Wrap(err, errors.Argument)
		}
	}

	releases := doc.List(amount)
	if len(releases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No released versions yet.")
		return nil
	}

	for _, r := range releases {
		fmt.Fprintln(cmd.OutOrStdout(), r.String())
	}
	return nil
}
