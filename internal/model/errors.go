package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrBirthdayAlreadySet = errors.New("birthday already set")
)

// ValidationKind classifies why a field value was rejected
type ValidationKind string

const (
	TooShort  ValidationKind = "too_short"
	BadFormat ValidationKind = "bad_format"
)

// ValidationError is returned when a name, phone or birthday string
// does not satisfy its format or length rule.
type ValidationError struct {
	Field string
	Value string
	Kind  ValidationKind

	// Err is the underlying rule failure
	Err error
}

func (e *ValidationError) Error() string {
	switch e.Field {
	case "name":
		return fmt.Sprintf("Name '%s' was not added. It must be at least %d characters long.", e.Value, MinNameLength)
	case "phone":
		return fmt.Sprintf("Phone number %s was not added. It must be %d digits", e.Value, PhoneLength)
	case "birthday":
		return "Invalid date format. Use " + BirthdayLayoutText
	default:
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// BirthdayAlreadySetError reports an attempt to set a second birthday on a record
type BirthdayAlreadySetError struct {
	Name    string
	Current Birthday
}

func (e *BirthdayAlreadySetError) Error() string {
	return fmt.Sprintf("A birthday is already set for %s. Current birthday: %s", e.Name, e.Current)
}

func (e *BirthdayAlreadySetError) Is(target error) bool {
	return target == ErrBirthdayAlreadySet
}
