package model

import "sort"

// SortBy specifies the field used to order contact records
type SortBy string

const (
	SortByName     SortBy = "name"
	SortByBirthday SortBy = "birthday"
	SortByDefault  SortBy = "" // Default: insertion order
)

// SortRecords sorts a slice of records in place.
// "name" sorts alphabetically; "birthday" sorts by month and day with records
// lacking a birthday last. Any other value leaves the slice in insertion order.
func SortRecords(records []*Record, sortBy string) {
	switch SortBy(sortBy) {
	case SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Name() < records[j].Name()
		})
	case SortByBirthday:
		sort.SliceStable(records, func(i, j int) bool {
			bi, oki := records[i].Birthday()
			bj, okj := records[j].Birthday()
			if !oki || !okj {
				return oki && !okj
			}
			if bi.Month() != bj.Month() {
				return bi.Month() < bj.Month()
			}
			return bi.Day() < bj.Day()
		})
	}
}
