package model

import "testing"

func withBirthday(t *testing.T, r *Record, birthday string) *Record {
	if err := r.AddBirthday(birthday); err != nil {
		t.Fatalf("failed to add birthday %s: %v", birthday, err)
	}
	return r
}

func TestSortRecords_ByName(t *testing.T) {
	records := []*Record{
		newTestRecord(t, "Charlie"),
		newTestRecord(t, "Alice"),
		newTestRecord(t, "Bob"),
	}

	SortRecords(records, "name")

	if records[0].Name() != "Alice" {
		t.Errorf("Expected Alice first, got %s", records[0].Name())
	}
	if records[1].Name() != "Bob" {
		t.Errorf("Expected Bob second, got %s", records[1].Name())
	}
	if records[2].Name() != "Charlie" {
		t.Errorf("Expected Charlie third, got %s", records[2].Name())
	}
}

func TestSortRecords_ByBirthday(t *testing.T) {
	records := []*Record{
		newTestRecord(t, "NoBirthday"),
		withBirthday(t, newTestRecord(t, "December"), "01.12.2001"),
		withBirthday(t, newTestRecord(t, "MarchLate"), "20.03.1970"),
		withBirthday(t, newTestRecord(t, "MarchEarly"), "02.03.1999"),
	}

	SortRecords(records, "birthday")

	// Year is ignored; records without a birthday sort last
	want := []string{"MarchEarly", "MarchLate", "December", "NoBirthday"}
	for i, name := range want {
		if records[i].Name() != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, records[i].Name())
		}
	}
}

func TestSortRecords_DefaultKeepsOrder(t *testing.T) {
	records := []*Record{
		newTestRecord(t, "Zed"),
		newTestRecord(t, "Amy"),
	}

	SortRecords(records, "")

	if records[0].Name() != "Zed" || records[1].Name() != "Amy" {
		t.Errorf("Expected insertion order to be kept, got %s, %s", records[0].Name(), records[1].Name())
	}
}

func TestSortRecords_UnrecognizedFallsBackToDefault(t *testing.T) {
	records := []*Record{
		newTestRecord(t, "Zed"),
		newTestRecord(t, "Amy"),
	}

	SortRecords(records, "invalid-sort-field")

	if records[0].Name() != "Zed" {
		t.Errorf("Expected default sort behavior, got %s first", records[0].Name())
	}
}

func TestSortRecords_EmptySlice(t *testing.T) {
	records := []*Record{}

	// Should not panic
	SortRecords(records, "name")

	if len(records) != 0 {
		t.Errorf("Expected empty slice to remain empty")
	}
}
