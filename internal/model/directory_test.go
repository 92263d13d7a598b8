package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_AddFindDelete(t *testing.T) {
	d := NewDirectory()
	alice := newTestRecord(t, "Alice", "0123456789")
	d.AddRecord(alice)

	found, ok := d.Find("Alice")
	require.True(t, ok)
	assert.Same(t, alice, found)

	_, ok = d.Find("alice")
	assert.False(t, ok, "lookup is exact")

	assert.True(t, d.Delete("Alice"))
	assert.False(t, d.Delete("Alice"))
	assert.Equal(t, 0, d.Len())
}

func TestDirectory_OverwriteKeepsPosition(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(newTestRecord(t, "Alice"))
	d.AddRecord(newTestRecord(t, "Bob"))

	replacement := newTestRecord(t, "Alice", "1111111111")
	d.AddRecord(replacement)

	records := d.Records()
	require.Len(t, records, 2)
	assert.Same(t, replacement, records[0])
	assert.Equal(t, "Bob", records[1].Name())
}

func TestDirectory_InsertionOrderAfterDelete(t *testing.T) {
	d := NewDirectory()
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		d.AddRecord(newTestRecord(t, name))
	}
	d.Delete("Bob")
	d.AddRecord(newTestRecord(t, "Bob"))

	var names []string
	for _, r := range d.Records() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"Alice", "Carol", "Bob"}, names)
}

func TestDirectory_StringEmpty(t *testing.T) {
	assert.Equal(t, "No records", NewDirectory().String())
}

func TestDirectory_String(t *testing.T) {
	d := NewDirectory()
	d.AddRecord(newTestRecord(t, "Alice", "0123456789"))
	bob := newTestRecord(t, "Bob", "9876543210")
	require.NoError(t, bob.AddBirthday("05.06.1990"))
	d.AddRecord(bob)

	want := "Contact name: Alice, phones: 0123456789\n" +
		"Contact name: Bob, phones: 9876543210, birthday: 05.06.1990"
	assert.Equal(t, want, d.String())
	assert.Equal(t, d.String(), d.String())
}
