package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrled/addrbook/internal/model"
)

func newAllCmd(a *app) *cobra.Command {
	var allFlags struct {
		Names        []string
		Phones       []string
		WithBirthday bool
		SortBy       string
	}

	cmd := &cobra.Command{
		Use:     "all",
		Short:   "Show contacts, optionally filtered and sorted",
		GroupID: contactsGroup,
		Args:    minimumArgs(0),
		Long: `Display contacts from the address book filtered by name, phone, or birthday.

If no filters are specified, all contacts are displayed in the order they were added.

Examples:
  # Show all contacts
  addrbook all

  # Show contacts whose name contains "ali" (case-insensitive)
  addrbook all --name ali

  # Show contacts with either phone number
  addrbook all --phone 0123456789 --phone 9876543210

  # Show contacts that have a birthday, in calendar order
  addrbook all --with-birthday --sort birthday`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch model.SortBy(allFlags.SortBy) {
			case model.SortByName, model.SortByBirthday, model.SortByDefault:
			default:
				return usageErrorf("invalid sort field %q: use name or birthday", allFlags.SortBy)
			}

			_, book, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			filter := model.RecordFilter{
				Names:        allFlags.Names,
				Phones:       allFlags.Phones,
				WithBirthday: allFlags.WithBirthday,
			}
			records := model.FilterRecords(book.Records(), filter)
			model.SortRecords(records, allFlags.SortBy)

			out := cmd.OutOrStdout()
			if book.Len() == 0 {
				fmt.Fprintln(out, book.String())
				return nil
			}
			if len(records) == 0 {
				fmt.Fprintln(out, "No contacts found matching the specified criteria.")
				return nil
			}

			fmt.Fprintln(out, model.RenderRecords(records, ""))
			if len(records) != book.Len() {
				fmt.Fprintf(out, "\nShowing %d of %d contacts\n", len(records), book.Len())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&allFlags.Names, "name", nil, "Filter by name substring (repeatable)")
	cmd.Flags().StringSliceVar(&allFlags.Phones, "phone", nil, "Filter by phone number (repeatable)")
	cmd.Flags().BoolVar(&allFlags.WithBirthday, "with-birthday", false, "Only show contacts with a birthday")
	cmd.Flags().StringVar(&allFlags.SortBy, "sort", "", "Sort by: name or birthday (default insertion order)")

	return cmd
}
