package model

import "strings"

// RecordFilter contains criteria for filtering contact records.
// All criteria are optional; only non-empty slices are applied.
// Within each field, values are combined with OR logic (any value matches).
// Between fields, criteria are combined with AND logic (all fields must match).
type RecordFilter struct {
	// Names filters by case-insensitive substring of the contact name
	Names []string

	// Phones filters by exact phone number
	Phones []string

	// WithBirthday keeps only records that have a birthday set
	WithBirthday bool
}

func (f RecordFilter) empty() bool {
	return len(f.Names) == 0 && len(f.Phones) == 0 && !f.WithBirthday
}

// FilterRecords returns the records matching the filter, preserving their order.
// An empty filter returns the input unchanged.
func FilterRecords(records []*Record, filter RecordFilter) []*Record {
	if filter.empty() {
		return records
	}

	names := make([]string, len(filter.Names))
	for i, n := range filter.Names {
		names[i] = strings.ToLower(n)
	}

	var filtered []*Record
	for _, record := range records {
		if len(names) > 0 && !containsAny(strings.ToLower(record.Name()), names) {
			continue
		}

		if len(filter.Phones) > 0 && !hasAnyPhone(record, filter.Phones) {
			continue
		}

		if filter.WithBirthday {
			if _, ok := record.Birthday(); !ok {
				continue
			}
		}

		filtered = append(filtered, record)
	}

	return filtered
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasAnyPhone(record *Record, phones []string) bool {
	for _, p := range phones {
		if _, ok := record.FindPhone(p); ok {
			return true
		}
	}
	return false
}
