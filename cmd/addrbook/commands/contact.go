package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrled/addrbook/internal/handler"
	"github.com/mrled/addrbook/internal/model"
)

// oneShotCommands are the handler commands exposed directly as subcommands
var oneShotCommands = []string{
	"add",
	"change",
	"phone",
	"remove-phone",
	"delete",
	"add-birthday",
	"show-birthday",
}

// newContactCmds builds one subcommand per handler command, taking usage
// and argument counts from the handler's command table
func newContactCmds(a *app) []*cobra.Command {
	table := make(map[string]handler.Command)
	for _, c := range handler.NewDispatcher(model.NewDirectory()).Commands() {
		table[c.Name] = c
	}

	cmds := make([]*cobra.Command, 0, len(oneShotCommands))
	for _, name := range oneShotCommands {
		entry := table[name]
		cmds = append(cmds, &cobra.Command{
			Use:     entry.Usage,
			Short:   entry.Summary,
			GroupID: contactsGroup,
			Args:    minimumArgs(entry.MinArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runOneShot(cmd, entry.Name, args)
			},
		})
	}
	return cmds
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return &UsageError{fmt.Errorf("%w\nUsage: %s", err, cmd.UseLine())}
		}
		return nil
	}
}

// runOneShot loads the address book, runs one handler command and saves.
// Nothing is saved when the command fails.
func (a *app) runOneShot(cmd *cobra.Command, name string, args []string) error {
	ctx := cmd.Context()
	store, book, err := a.load(ctx)
	if err != nil {
		return err
	}

	result := handler.NewDispatcher(book, a.dispatcherOptions()...).Run(name, args)
	if result.Err != nil {
		if errors.Is(result.Err, handler.ErrNotEnoughArgs) {
			return &UsageError{result.Err}
		}
		return ExitWithCode(1, result.Err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Output)

	if err := store.Save(ctx, book); err != nil {
		return ExitWithCode(1, fmt.Errorf("failed to save address book: %w", err))
	}
	return nil
}
