package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ariel-frischer/changelog/internal/errors"
	"github.com/ariel-frischer/changelog/internal/git"
	"github.com/ariel-frischer/changelog/internal/github"
	"github.com/ariel-frischer/changelog/internal/markdown"
	"github.com/ariel-frischer/changelog/internal/output"
	"github.com/spf13/cobra"
)

// entryCommands maps each entry command onto the subsection it writes to.
var entryCommands = []struct {
	Name    string
	Section string
}{
	{"add", "Added"},
	{"fix", "Fixed"},
	{"change", "Changed"},
	{"deprecate", "Deprecated"},
	{"remove", "Removed"},
}

func init() {
	for _, ec := range entryCommands {
		rootCmd.AddCommand(newEntryCommand(ec.Name, ec.Section))
	}
}

// newEntryCommand builds one of the add/fix/change/deprecate/remove
// commands. They all behave identically apart from the target subsection.
func newEntryCommand(name, section string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [<link>]",
		Short: fmt.Sprintf("Add a new entry to the changelog in the %q section", section),
		Long: fmt.Sprintf(`Add a new entry to the %q subsection of "Unreleased".

The entry text comes from --message, or from a link argument: a commit
hash, a PR URL or an issue URL, which is resolved to a human-readable
reference via the GitHub API.`, section),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEntry(cmd, args, name, section)
		},
	}
	cmd.Flags().StringP("message", "m", "", "A manual message you want to add")
	return cmd
}

func runEntry(cmd *cobra.Command, args []string, name, section string) error {
	message, _ := cmd.Flags().GetString("message")
	if message != "" && len(args) > 0 {
		return errors.NewArgumentError(
			"pass either a link or --message, not both",
		)
	}

	doc, cfg, err := loadDocument()
	if err != nil {
		return err
	}

	if message == "" {
		if len(args) == 0 {
			return errors.MissingEntryInput(name)
		}
		message, err = resolveLink(cmd.Context(), args[0])
		if err != nil {
			return err
		}
	}

	if err := doc.AddListItemToSection(section, message); err != nil {
		return asCommandError(err, changelogFilename(cfg))
	}
	if err := doc.Persist(); err != nil {
		return asCommandError(err, changelogFilename(cfg))
	}

	out := cmd.OutOrStdout()
	output.Print(out, fmt.Sprintf("Added a new entry to the %s section:", output.Accent(section)))

	if nodes, ok := doc.SectionContents("unreleased"); ok {
		text := markdown.Render(nodes)
		text = strings.Replace(text, "- "+message, "- "+output.Success(message), 1)
		output.PrintRule(out, changelogFilename(cfg))
		output.PrintIndented(out, text)
		output.PrintRule(out, changelogFilename(cfg))
	}
	return nil
}

// resolveLink turns a commit hash, PR URL or issue URL into the display
// string that becomes the entry text. The origin remote of the enclosing
// repository supplies owner/repo for bare commit hashes.
func resolveLink(ctx context.Context, link string) (string, error) {
	origin := ""
	if repo, err := git.Open(pwdFlag); err == nil {
		origin, _ = repo.OriginURL()
	}

	ref, err := github.ParseReference(link, origin)
	if err != nil {
		return "", errors.Wrap(err, errors.Argument,
			"Pass a commit hash, PR URL or issue URL",
			"Or write the entry yourself with --message")
	}

	ctx, cancel := context.WithTimeout(ctx, github.DefaultTimeout)
	defer cancel()

	display, err := github.NewClient().Resolve(ctx, ref)
	if err != nil {
		return "", errors.Wrap(err, errors.Collaborator,
			"Check your network connection",
			"Private repositories need a GITHUB_TOKEN environment variable")
	}
	return display, nil
}
