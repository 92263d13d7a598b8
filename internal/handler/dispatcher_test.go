package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrled/addrbook/internal/model"
)

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time {
		return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	}
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *model.Directory) {
	t.Helper()
	book := model.NewDirectory()
	return NewDispatcher(book, WithClock(fixedClock(2024, time.June, 1))), book
}

func run(t *testing.T, d *Dispatcher, line string) string {
	t.Helper()
	return d.Handle(line).Output
}

func TestParseInput(t *testing.T) {
	cmd, args := ParseInput("  ADD   Alice\t0123456789  ")
	assert.Equal(t, "add", cmd)
	assert.Equal(t, []string{"Alice", "0123456789"}, args)

	cmd, args = ParseInput("   ")
	assert.Equal(t, "", cmd)
	assert.Empty(t, args)
}

func TestHandle_HelloAndUnknown(t *testing.T) {
	d, _ := newTestDispatcher(t)

	assert.Equal(t, "How can I help you?", run(t, d, "hello"))
	assert.Equal(t, "Invalid command.", run(t, d, "frobnicate"))
	assert.Equal(t, "Invalid command.", run(t, d, ""))
}

func TestHandle_Exit(t *testing.T) {
	d, _ := newTestDispatcher(t)

	for _, line := range []string{"exit", "close", "CLOSE"} {
		res := d.Handle(line)
		assert.True(t, res.Exit, line)
		assert.Equal(t, "Good bye!", res.Output)
	}
	assert.False(t, d.Handle("hello").Exit)
}

func TestHandle_NotEnoughArgs(t *testing.T) {
	d, _ := newTestDispatcher(t)

	res := d.Handle("change Alice 0123456789")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, ErrNotEnoughArgs)
	assert.Equal(t, "Not enough arguments. Usage: change <name> <old phone> <new phone>", res.Output)
}

func TestHandle_AddContact(t *testing.T) {
	d, book := newTestDispatcher(t)

	assert.Equal(t, "Contact added.", run(t, d, "add Alice 0123456789"))
	assert.Equal(t, "Contact updated.", run(t, d, "add Alice 9876543210"))
	assert.Equal(t, "Contact added.", run(t, d, "add Bob"))

	record, ok := book.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, "0123456789; 9876543210", record.PhoneList())
	assert.Equal(t, 2, book.Len())
}

func TestHandle_AddContactValidation(t *testing.T) {
	d, book := newTestDispatcher(t)

	res := d.Handle("add Al 0123456789")
	assert.ErrorIs(t, res.Err, model.ErrValidation)
	assert.Equal(t, "Name 'Al' was not added. It must be at least 3 characters long.", res.Output)

	res = d.Handle("add Alice 123")
	assert.ErrorIs(t, res.Err, model.ErrValidation)
	assert.Equal(t, "Phone number 123 was not added. It must be 10 digits", res.Output)

	// The new contact is not inserted when its phone is rejected
	assert.Equal(t, 0, book.Len())
}

func TestHandle_ChangePhone(t *testing.T) {
	d, book := newTestDispatcher(t)
	run(t, d, "add Alice 0123456789")

	assert.Equal(t, "Phone number updated for Alice.", run(t, d, "change Alice 0123456789 1111111111"))
	assert.Equal(t, "Phone 0123456789 not found for Alice.", run(t, d, "change Alice 0123456789 2222222222"))
	assert.Equal(t, "Contact Bob not found.", run(t, d, "change Bob 0123456789 2222222222"))

	res := d.Handle("change Alice 1111111111 bad")
	assert.Error(t, res.Err)

	record, _ := book.Find("Alice")
	assert.Equal(t, "1111111111", record.PhoneList())
}

func TestHandle_Phone(t *testing.T) {
	d, _ := newTestDispatcher(t)
	run(t, d, "add Alice 0123456789")
	run(t, d, "add Alice 9876543210")
	run(t, d, "add Bob")

	assert.Equal(t, "Phones for Alice: 0123456789; 9876543210", run(t, d, "phone Alice"))
	assert.Equal(t, "No phones set for Bob.", run(t, d, "phone Bob"))
	assert.Equal(t, "Contact Carol not found.", run(t, d, "phone Carol"))
}

func TestHandle_RemovePhoneAndDelete(t *testing.T) {
	d, book := newTestDispatcher(t)
	run(t, d, "add Alice 0123456789")

	assert.Equal(t, "Phone 0123456789 removed from Alice.", run(t, d, "remove-phone Alice 0123456789"))
	assert.Equal(t, "Phone 0123456789 not found for Alice.", run(t, d, "remove-phone Alice 0123456789"))

	assert.Equal(t, "Contact Alice deleted.", run(t, d, "delete Alice"))
	assert.Equal(t, "Contact Alice not found.", run(t, d, "delete Alice"))
	assert.Equal(t, 0, book.Len())
}

func TestHandle_All(t *testing.T) {
	d, _ := newTestDispatcher(t)

	assert.Equal(t, "No records", run(t, d, "all"))

	run(t, d, "add Alice 0123456789")
	run(t, d, "add Bob 9876543210")
	run(t, d, "add-birthday Bob 05.06.1990")

	want := "Contact name: Alice, phones: 0123456789\n" +
		"Contact name: Bob, phones: 9876543210, birthday: 05.06.1990"
	assert.Equal(t, want, run(t, d, "all"))
	assert.Equal(t, want, run(t, d, "all"))
}

func TestHandle_Birthday(t *testing.T) {
	d, _ := newTestDispatcher(t)
	run(t, d, "add Alice")

	assert.Equal(t, "No birthday set for Alice", run(t, d, "show-birthday Alice"))
	assert.Equal(t, "Birthday added for Alice.", run(t, d, "add-birthday Alice 05.06.1990"))
	assert.Equal(t, "05.06.1990", run(t, d, "show-birthday Alice"))

	res := d.Handle("add-birthday Alice 06.06.1990")
	assert.ErrorIs(t, res.Err, model.ErrBirthdayAlreadySet)
	assert.Equal(t, "A birthday is already set for Alice. Current birthday: 05.06.1990", res.Output)

	assert.Equal(t, "Invalid date format. Use DD.MM.YYYY", run(t, d, "add-birthday Alice 1990-06-05"))
	assert.Equal(t, "Contact Bob not found.", run(t, d, "add-birthday Bob 05.06.1990"))
	assert.Equal(t, "Contact Bob not found.", run(t, d, "show-birthday Bob"))
}

func TestHandle_Birthdays(t *testing.T) {
	d, _ := newTestDispatcher(t)

	assert.Equal(t, "No upcoming birthdays.", run(t, d, "birthdays"))

	run(t, d, "add Alice")
	run(t, d, "add-birthday Alice 05.06.1990")
	run(t, d, "add Bob")
	run(t, d, "add-birthday Bob 10.06.1990")

	assert.Equal(t, "Contact name: Alice, phones: , birthday: 05.06.1990", run(t, d, "birthdays"))

	want := "Contact name: Alice, phones: , birthday: 05.06.1990\n" +
		"Contact name: Bob, phones: , birthday: 10.06.1990"
	assert.Equal(t, want, run(t, d, "birthdays 14"))

	res := d.Handle("birthdays soon")
	assert.Error(t, res.Err)
	res = d.Handle("birthdays 0")
	assert.Error(t, res.Err)
}

func TestHandle_BirthdayWindowOption(t *testing.T) {
	book := model.NewDirectory()
	d := NewDispatcher(book,
		WithClock(fixedClock(2024, time.June, 1)),
		WithBirthdayWindow(14))

	run(t, d, "add Bob")
	run(t, d, "add-birthday Bob 10.06.1990")

	assert.Equal(t, "Contact name: Bob, phones: , birthday: 10.06.1990", run(t, d, "birthdays"))
}

func TestHandle_Help(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out := run(t, d, "help")
	for _, cmd := range d.Commands() {
		assert.Contains(t, out, cmd.Usage)
	}
}
