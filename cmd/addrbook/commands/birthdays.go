package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/presenter"
)

func newBirthdaysCmd(a *app) *cobra.Command {
	var birthdaysFlags struct {
		Days   int
		Format string
	}

	cmd := &cobra.Command{
		Use:     "birthdays",
		Short:   "Show upcoming birthdays",
		GroupID: contactsGroup,
		Args:    minimumArgs(0),
		Long: `Display contacts whose birthday falls within the next days, starting today.

The window defaults to the configured birthday window (7 days unless set with
ADDRBOOK_BIRTHDAY_WINDOW or the config file).

Examples:
  # Birthdays in the configured window
  addrbook birthdays

  # Birthdays in the next 30 days, as a table
  addrbook birthdays --days 30 --format compact`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days := a.cfg.Birthdays.WindowDays
			if cmd.Flags().Changed("days") {
				if birthdaysFlags.Days <= 0 {
					return usageErrorf("invalid number of days %d: must be a positive integer", birthdaysFlags.Days)
				}
				days = birthdaysFlags.Days
			}
			if birthdaysFlags.Format != "detailed" && birthdaysFlags.Format != "compact" {
				return usageErrorf("invalid format %q: use detailed or compact", birthdaysFlags.Format)
			}

			_, book, err := a.load(cmd.Context())
			if err != nil {
				return err
			}

			upcoming := book.UpcomingBirthdaysDetailed(time.Now(), days)
			out := cmd.OutOrStdout()
			if len(upcoming) == 0 {
				fmt.Fprintln(out, "No upcoming birthdays.")
				return nil
			}

			switch birthdaysFlags.Format {
			case "compact":
				displayBirthdaysCompact(out, upcoming)
			default:
				displayBirthdaysDetailed(out, upcoming)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&birthdaysFlags.Days, "days", "d", 0, "Number of days to look ahead, a positive integer (default from config)")
	cmd.Flags().StringVar(&birthdaysFlags.Format, "format", "detailed", "Output format: detailed or compact")

	return cmd
}

// displayBirthdaysDetailed displays one sentence per contact
func displayBirthdaysDetailed(out io.Writer, upcoming []model.UpcomingBirthday) {
	for _, u := range upcoming {
		birthday, _ := u.Record.Birthday()
		fmt.Fprintf(out, "%s: %s (%s)\n",
			u.Record.Name(),
			presenter.FormatDaysUntil(u.DaysUntil),
			birthday)
	}
}

// displayBirthdaysCompact displays upcoming birthdays as a table
func displayBirthdaysCompact(out io.Writer, upcoming []model.UpcomingBirthday) {
	fmt.Fprintf(out, "%-30s %-12s %s\n", "Name", "Birthday", "When")
	fmt.Fprintln(out, strings.Repeat("-", 50))

	for _, u := range upcoming {
		birthday, _ := u.Record.Birthday()
		fmt.Fprintf(out, "%-30s %-12s %s\n",
			truncateString(u.Record.Name(), 28),
			birthday,
			presenter.FormatDaysUntilCompact(u.DaysUntil))
	}
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
