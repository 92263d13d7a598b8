// Package codec converts a directory to and from its persisted JSON document.
// Decoding rebuilds every record through the model's validating constructors,
// so a store can never load a contact the CLI could not have created.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mrled/addrbook/internal/model"
)

// Version is the document format written by Encode
const Version = 1

var (
	ErrCorrupt            = errors.New("address book data is corrupt")
	ErrUnsupportedVersion = errors.New("unsupported address book format version")
)

// ContactDTO is the persisted form of one record
type ContactDTO struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// DocumentDTO is the persisted form of a whole directory
type DocumentDTO struct {
	Version  int          `json:"version"`
	Contacts []ContactDTO `json:"contacts"`
}

// FromRecord creates a ContactDTO from a record
func FromRecord(record *model.Record) ContactDTO {
	phones := record.Phones()
	dto := ContactDTO{
		Name:   record.Name(),
		Phones: make([]string, len(phones)),
	}
	for i, p := range phones {
		dto.Phones[i] = p.String()
	}
	if b, ok := record.Birthday(); ok {
		dto.Birthday = b.String()
	}
	return dto
}

// ToRecord rebuilds a record, validating every field
func (dto ContactDTO) ToRecord() (*model.Record, error) {
	record, err := model.NewRecord(dto.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range dto.Phones {
		if err := record.AddPhone(p); err != nil {
			return nil, fmt.Errorf("contact %s: %w", dto.Name, err)
		}
	}
	if dto.Birthday != "" {
		if err := record.AddBirthday(dto.Birthday); err != nil {
			return nil, fmt.Errorf("contact %s: %w", dto.Name, err)
		}
	}
	return record, nil
}

// FromDirectory creates a DocumentDTO holding every record in directory order
func FromDirectory(book *model.Directory) DocumentDTO {
	records := book.Records()
	doc := DocumentDTO{
		Version:  Version,
		Contacts: make([]ContactDTO, len(records)),
	}
	for i, r := range records {
		doc.Contacts[i] = FromRecord(r)
	}
	return doc
}

// ToDirectory rebuilds a directory from the document
func (doc DocumentDTO) ToDirectory() (*model.Directory, error) {
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, doc.Version, Version)
	}
	return ContactsToDirectory(doc.Contacts)
}

// ContactsToDirectory rebuilds a directory from contacts in order.
// A repeated name replaces the earlier contact, as AddRecord does.
func ContactsToDirectory(contacts []ContactDTO) (*model.Directory, error) {
	book := model.NewDirectory()
	for _, c := range contacts {
		record, err := c.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		book.AddRecord(record)
	}
	return book, nil
}

// Encode writes the directory as indented JSON
func Encode(w io.Writer, book *model.Directory) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(FromDirectory(book))
}

// Marshal returns the directory as indented JSON
func Marshal(book *model.Directory) ([]byte, error) {
	return json.MarshalIndent(FromDirectory(book), "", "  ")
}

// Decode reads a directory document
func Decode(r io.Reader) (*model.Directory, error) {
	var doc DocumentDTO
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return doc.ToDirectory()
}
