package dynamorepo

import (
	"sort"

	"github.com/mrled/addrbook/internal/repository/codec"
)

// DynamoDTO represents the persistence layer DTO for DynamoDB
// It maps a contact to DynamoDB's key structure where:
// - PK (partition key) is the contact name
// - Pos preserves the address book's insertion order across loads
type DynamoDTO struct {
	PK       string   `dynamodbav:"pk"` // Partition Key - maps from Name
	Pos      int      `dynamodbav:"pos"`
	Phones   []string `dynamodbav:"phones"`
	Birthday string   `dynamodbav:"birthday,omitempty"`
}

// ToContact converts a DynamoDTO to the codec's contact form
func (dto *DynamoDTO) ToContact() codec.ContactDTO {
	return codec.ContactDTO{
		Name:     dto.PK,
		Phones:   dto.Phones,
		Birthday: dto.Birthday,
	}
}

// FromContact creates a DynamoDTO for the contact at position pos
func FromContact(contact codec.ContactDTO, pos int) *DynamoDTO {
	return &DynamoDTO{
		PK:       contact.Name,
		Pos:      pos,
		Phones:   contact.Phones,
		Birthday: contact.Birthday,
	}
}

// ToContactList orders DTOs by position and converts them to contacts
func ToContactList(dtos []*DynamoDTO) []codec.ContactDTO {
	ordered := make([]*DynamoDTO, len(dtos))
	copy(ordered, dtos)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Pos < ordered[j].Pos
	})

	contacts := make([]codec.ContactDTO, len(ordered))
	for i, dto := range ordered {
		contacts[i] = dto.ToContact()
	}
	return contacts
}

// FromContactList creates DTOs numbered in slice order
func FromContactList(contacts []codec.ContactDTO) []*DynamoDTO {
	dtos := make([]*DynamoDTO, len(contacts))
	for i, contact := range contacts {
		dtos[i] = FromContact(contact, i)
	}
	return dtos
}
