package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrled/addrbook/internal/model"
)

// HandlerFunc runs a command against the directory and returns the text to show
type HandlerFunc func(args []string, book *model.Directory) (string, error)

// Command is one entry of the dispatch table
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Summary string
	MinArgs int
	Exit    bool
	Run     HandlerFunc
}

func (d *Dispatcher) table() []Command {
	return []Command{
		{Name: "hello", Usage: "hello", Summary: "Greet the assistant", Run: hello},
		{Name: "add", Usage: "add <name> [phone]", Summary: "Add a contact or a phone to an existing contact", MinArgs: 1, Run: AddContact},
		{Name: "change", Usage: "change <name> <old phone> <new phone>", Summary: "Replace a contact's phone", MinArgs: 3, Run: ChangePhone},
		{Name: "phone", Usage: "phone <name>", Summary: "Show a contact's phones", MinArgs: 1, Run: ShowPhone},
		{Name: "remove-phone", Usage: "remove-phone <name> <phone>", Summary: "Remove a phone from a contact", MinArgs: 2, Run: RemovePhone},
		{Name: "delete", Usage: "delete <name>", Summary: "Delete a contact", MinArgs: 1, Run: DeleteContact},
		{Name: "all", Usage: "all", Summary: "Show all contacts", Run: ShowAll},
		{Name: "add-birthday", Usage: "add-birthday <name> <DD.MM.YYYY>", Summary: "Set a contact's birthday", MinArgs: 2, Run: AddBirthday},
		{Name: "show-birthday", Usage: "show-birthday <name>", Summary: "Show a contact's birthday", MinArgs: 1, Run: ShowBirthday},
		{Name: "birthdays", Usage: "birthdays [days]", Summary: fmt.Sprintf("Show birthdays in the next days (default %d)", d.window), Run: d.birthdays},
		{Name: "help", Usage: "help", Summary: "List commands", Run: d.help},
		{Name: "exit", Aliases: []string{"close"}, Usage: "exit", Summary: "Save and quit", Exit: true, Run: goodbye},
	}
}

func hello(args []string, book *model.Directory) (string, error) {
	return "How can I help you?", nil
}

func goodbye(args []string, book *model.Directory) (string, error) {
	return "Good bye!", nil
}

func contactNotFound(name string) string {
	return fmt.Sprintf("Contact %s not found.", name)
}

// AddContact creates the named contact if needed and appends the optional phone.
// A new contact is only inserted once its phone has validated.
func AddContact(args []string, book *model.Directory) (string, error) {
	name := args[0]

	record, exists := book.Find(name)
	if !exists {
		r, err := model.NewRecord(name)
		if err != nil {
			return "", err
		}
		record = r
	}

	if len(args) > 1 {
		if err := record.AddPhone(args[1]); err != nil {
			return "", err
		}
	}

	if exists {
		return "Contact updated.", nil
	}
	book.AddRecord(record)
	return "Contact added.", nil
}

// ChangePhone replaces one of a contact's phones with a new, validated number
func ChangePhone(args []string, book *model.Directory) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := book.Find(name)
	if !ok {
		return contactNotFound(name), nil
	}

	found, err := record.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf("Phone %s not found for %s.", oldPhone, name), nil
	}
	return fmt.Sprintf("Phone number updated for %s.", name), nil
}

// ShowPhone lists a contact's phones
func ShowPhone(args []string, book *model.Directory) (string, error) {
	name := args[0]

	record, ok := book.Find(name)
	if !ok {
		return contactNotFound(name), nil
	}
	if len(record.Phones()) == 0 {
		return fmt.Sprintf("No phones set for %s.", name), nil
	}
	return fmt.Sprintf("Phones for %s: %s", name, record.PhoneList()), nil
}

// RemovePhone removes the first matching phone from a contact
func RemovePhone(args []string, book *model.Directory) (string, error) {
	name, phone := args[0], args[1]

	record, ok := book.Find(name)
	if !ok {
		return contactNotFound(name), nil
	}
	if !record.RemovePhone(phone) {
		return fmt.Sprintf("Phone %s not found for %s.", phone, name), nil
	}
	return fmt.Sprintf("Phone %s removed from %s.", phone, name), nil
}

// DeleteContact removes a contact from the address book
func DeleteContact(args []string, book *model.Directory) (string, error) {
	name := args[0]
	if !book.Delete(name) {
		return contactNotFound(name), nil
	}
	return fmt.Sprintf("Contact %s deleted.", name), nil
}

// ShowAll renders every contact in insertion order
func ShowAll(args []string, book *model.Directory) (string, error) {
	return book.String(), nil
}

// AddBirthday sets a contact's birthday; a contact holds at most one
func AddBirthday(args []string, book *model.Directory) (string, error) {
	name, birthday := args[0], args[1]

	record, ok := book.Find(name)
	if !ok {
		return contactNotFound(name), nil
	}
	if err := record.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s.", name), nil
}

// ShowBirthday shows a contact's birthday
func ShowBirthday(args []string, book *model.Directory) (string, error) {
	name := args[0]

	record, ok := book.Find(name)
	if !ok {
		return contactNotFound(name), nil
	}
	return record.ShowBirthday(), nil
}

func (d *Dispatcher) birthdays(args []string, book *model.Directory) (string, error) {
	days := d.window
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return "", fmt.Errorf("invalid number of days %q: must be a positive integer", args[0])
		}
		days = n
	}

	upcoming := book.UpcomingBirthdays(d.now(), days)
	return model.RenderRecords(upcoming, "No upcoming birthdays."), nil
}

func (d *Dispatcher) help(args []string, book *model.Directory) (string, error) {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, cmd := range d.Commands() {
		fmt.Fprintf(&b, "\n  %-40s %s", cmd.Usage, cmd.Summary)
	}
	return b.String(), nil
}
