package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinNameLength = 3
	PhoneLength   = 10

	// BirthdayLayout is the time layout for DD.MM.YYYY
	BirthdayLayout     = "02.01.2006"
	BirthdayLayoutText = "DD.MM.YYYY"
)

var (
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	birthdayPattern = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}\.[0-9]{4}$`)
)

// Name is a validated contact name
type Name struct {
	value string
}

// NewName validates s as a contact name.
// Length is counted in characters, not bytes.
func NewName(s string) (Name, error) {
	err := validation.Validate(s,
		validation.Required,
		validation.RuneLength(MinNameLength, 0),
	)
	if err != nil {
		return Name{}, &ValidationError{Field: "name", Value: s, Kind: TooShort, Err: err}
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated ten digit phone number
type Phone struct {
	value string
}

// NewPhone validates s as a phone number of exactly ten ASCII digits
func NewPhone(s string) (Phone, error) {
	err := validation.Validate(s,
		validation.Required,
		validation.Match(phonePattern),
	)
	if err != nil {
		return Phone{}, &ValidationError{Field: "phone", Value: s, Kind: BadFormat, Err: err}
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a naive calendar date, stored at UTC midnight
type Birthday struct {
	date time.Time
}

// NewBirthday parses s in DD.MM.YYYY form and rejects dates that do not
// exist on the calendar, such as 31.02.2020.
func NewBirthday(s string) (Birthday, error) {
	err := validation.Validate(s,
		validation.Required,
		validation.Match(birthdayPattern),
		validation.Date(BirthdayLayout),
	)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: s, Kind: BadFormat, Err: err}
	}

	date, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: s, Kind: BadFormat, Err: err}
	}
	return Birthday{date: date}, nil
}

func (b Birthday) Day() int {
	return b.date.Day()
}

func (b Birthday) Month() time.Month {
	return b.date.Month()
}

func (b Birthday) Year() int {
	return b.date.Year()
}

// Time returns the birthday as a UTC midnight time
func (b Birthday) Time() time.Time {
	return b.date
}

// String renders the birthday as DD.MM.YYYY
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
