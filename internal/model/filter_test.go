package model

import "testing"

func filterFixture(t *testing.T) []*Record {
	alice := newTestRecord(t, "Alice", "1111111111")
	if err := alice.AddBirthday("05.06.1990"); err != nil {
		t.Fatalf("failed to add birthday: %v", err)
	}
	bob := newTestRecord(t, "Bob Smith", "2222222222", "3333333333")
	alicia := newTestRecord(t, "alicia", "4444444444")
	return []*Record{alice, bob, alicia}
}

func TestFilterRecords_EmptyFilter(t *testing.T) {
	records := filterFixture(t)

	result := FilterRecords(records, RecordFilter{})

	if len(result) != 3 {
		t.Errorf("Expected 3 records with empty filter, got %d", len(result))
	}
}

func TestFilterRecords_NameSubstringCaseInsensitive(t *testing.T) {
	records := filterFixture(t)

	result := FilterRecords(records, RecordFilter{Names: []string{"ALI"}})

	if len(result) != 2 {
		t.Fatalf("Expected 2 records matching 'ali', got %d", len(result))
	}
	if result[0].Name() != "Alice" || result[1].Name() != "alicia" {
		t.Errorf("Expected Alice then alicia, got %s then %s", result[0].Name(), result[1].Name())
	}
}

func TestFilterRecords_MultipleNames(t *testing.T) {
	records := filterFixture(t)

	result := FilterRecords(records, RecordFilter{Names: []string{"bob", "alicia"}})

	if len(result) != 2 {
		t.Errorf("Expected 2 records (bob or alicia), got %d", len(result))
	}
}

func TestFilterRecords_PhoneExactMatch(t *testing.T) {
	records := filterFixture(t)

	result := FilterRecords(records, RecordFilter{Phones: []string{"3333333333"}})

	if len(result) != 1 {
		t.Fatalf("Expected 1 record with phone, got %d", len(result))
	}
	if result[0].Name() != "Bob Smith" {
		t.Errorf("Expected Bob Smith, got %s", result[0].Name())
	}

	result = FilterRecords(records, RecordFilter{Phones: []string{"333333"}})
	if len(result) != 0 {
		t.Errorf("Expected partial phone to match nothing, got %d", len(result))
	}
}

func TestFilterRecords_WithBirthday(t *testing.T) {
	records := filterFixture(t)

	result := FilterRecords(records, RecordFilter{WithBirthday: true})

	if len(result) != 1 {
		t.Fatalf("Expected 1 record with a birthday, got %d", len(result))
	}
	if result[0].Name() != "Alice" {
		t.Errorf("Expected Alice, got %s", result[0].Name())
	}
}

func TestFilterRecords_CombinedFilters(t *testing.T) {
	records := filterFixture(t)

	// Name matches Alice and alicia, but only Alice has a birthday
	filter := RecordFilter{
		Names:        []string{"ali"},
		WithBirthday: true,
	}
	result := FilterRecords(records, filter)

	if len(result) != 1 {
		t.Errorf("Expected 1 record matching both filters, got %d", len(result))
	}
}

func TestFilterRecords_NoMatches(t *testing.T) {
	records := filterFixture(t)

	result := FilterRecords(records, RecordFilter{Names: []string{"charlie"}})

	if len(result) != 0 {
		t.Errorf("Expected 0 records with no matches, got %d", len(result))
	}
}
