package model

import "time"

// DefaultBirthdayWindow is the number of days UpcomingBirthdays looks ahead by default
const DefaultBirthdayWindow = 7

const day = 24 * time.Hour

// UpcomingBirthday pairs a record with the number of days until its birthday this year
type UpcomingBirthday struct {
	Record    *Record
	DaysUntil int
}

// UpcomingBirthdays returns the records whose birthday falls within
// [today, today+days), in directory order.
func (d *Directory) UpcomingBirthdays(today time.Time, days int) []*Record {
	upcoming := d.UpcomingBirthdaysDetailed(today, days)
	result := make([]*Record, len(upcoming))
	for i, u := range upcoming {
		result[i] = u.Record
	}
	return result
}

// UpcomingBirthdaysDetailed is UpcomingBirthdays with the distance in days for each record.
//
// Only the calendar date of today is used; its clock and location are ignored.
// The anchor is the birthday's month and day in today's year only: a birthday
// that has already passed this year is excluded, even when the window reaches
// into January. A 29 February birthday is anchored on 1 March in non-leap years.
func (d *Directory) UpcomingBirthdaysDetailed(today time.Time, days int) []UpcomingBirthday {
	var result []UpcomingBirthday
	if days <= 0 {
		return result
	}

	start := civilDate(today)
	for _, record := range d.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}
		delta := DaysUntilBirthday(start, birthday)
		if delta >= 0 && delta < days {
			result = append(result, UpcomingBirthday{Record: record, DaysUntil: delta})
		}
	}
	return result
}

// DaysUntilBirthday returns the whole days from today's calendar date to the
// birthday in today's year. It is 0 on the birthday and negative once it has passed.
func DaysUntilBirthday(today time.Time, birthday Birthday) int {
	start := civilDate(today)
	anchor := birthdayAnchor(birthday, start.Year())
	return int(anchor.Sub(start) / day)
}

// birthdayAnchor places the birthday's month and day in year.
// time.Date normalizes 29 February of a non-leap year to 1 March.
func birthdayAnchor(birthday Birthday, year int) time.Time {
	return time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
}

func civilDate(t time.Time) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}
