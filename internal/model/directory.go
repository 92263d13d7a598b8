package model

import "strings"

// Directory is the address book: records keyed by name, iterated in insertion order.
// It is not safe for concurrent use.
type Directory struct {
	records map[string]*Record
	order   []string
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{
		records: make(map[string]*Record),
	}
}

// AddRecord inserts the record under its name.
// An existing record with the same name is replaced in place and keeps its position.
func (d *Directory) AddRecord(record *Record) {
	key := record.Name()
	if _, exists := d.records[key]; !exists {
		d.order = append(d.order, key)
	}
	d.records[key] = record
}

// Find looks a record up by exact name
func (d *Directory) Find(name string) (*Record, bool) {
	record, ok := d.records[name]
	return record, ok
}

// Delete removes the named record and reports whether it existed
func (d *Directory) Delete(name string) bool {
	if _, exists := d.records[name]; !exists {
		return false
	}
	delete(d.records, name)
	for i, key := range d.order {
		if key == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Records returns all records in insertion order
func (d *Directory) Records() []*Record {
	result := make([]*Record, 0, len(d.order))
	for _, key := range d.order {
		result = append(result, d.records[key])
	}
	return result
}

func (d *Directory) Len() int {
	return len(d.order)
}

// String renders one record per line, or "No records" when empty
func (d *Directory) String() string {
	return RenderRecords(d.Records(), "No records")
}

// RenderRecords joins record renderings with newlines, using placeholder for an empty slice
func RenderRecords(records []*Record, placeholder string) string {
	if len(records) == 0 {
		return placeholder
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
