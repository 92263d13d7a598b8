package model

import "strings"

// Record holds one contact: a name, its phones in insertion order, and an optional birthday
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the record's phones
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates s and appends it. Duplicates are allowed.
func (r *Record) AddPhone(s string) error {
	phone, err := NewPhone(s)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// EditPhone replaces the first phone equal to old with newPhone.
// The new value is validated first; false means old was not found.
func (r *Record) EditPhone(old, newPhone string) (bool, error) {
	phone, err := NewPhone(newPhone)
	if err != nil {
		return false, err
	}

	i := r.indexOf(old)
	if i < 0 {
		return false, nil
	}
	r.phones[i] = phone
	return true, nil
}

// FindPhone returns the first phone equal to s
func (r *Record) FindPhone(s string) (Phone, bool) {
	i := r.indexOf(s)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// RemovePhone removes the first phone equal to s and reports whether one was found
func (r *Record) RemovePhone(s string) bool {
	i := r.indexOf(s)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// AddBirthday sets the birthday. A record holds at most one birthday;
// a second call fails with a *BirthdayAlreadySetError.
func (r *Record) AddBirthday(s string) error {
	if r.birthday != nil {
		return &BirthdayAlreadySetError{Name: r.Name(), Current: *r.birthday}
	}

	birthday, err := NewBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// ShowBirthday renders the birthday, or a message naming the contact when unset
func (r *Record) ShowBirthday() string {
	if r.birthday == nil {
		return "No birthday set for " + r.Name()
	}
	return r.birthday.String()
}

// PhoneList renders the phones separated by "; "
func (r *Record) PhoneList() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.String()
	}
	return strings.Join(values, "; ")
}

func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("Contact name: ")
	b.WriteString(r.Name())
	b.WriteString(", phones: ")
	b.WriteString(r.PhoneList())
	if r.birthday != nil {
		b.WriteString(", birthday: ")
		b.WriteString(r.birthday.String())
	}
	return b.String()
}

func (r *Record) indexOf(s string) int {
	for i, p := range r.phones {
		if p.value == s {
			return i
		}
	}
	return -1
}
