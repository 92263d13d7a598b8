package presenter

import "fmt"

// FormatDaysUntil formats a distance in days as a human-readable phrase.
// Returns "today", "tomorrow", or "in 3 days".
// This is the verbose format suitable for detailed displays.
func FormatDaysUntil(days int) string {
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// FormatDaysUntilCompact formats a distance in days as "today" or "+3d".
// This is the compact format suitable for table displays with limited space.
func FormatDaysUntilCompact(days int) string {
	if days <= 0 {
		return "today"
	}
	return fmt.Sprintf("+%dd", days)
}
