// Package datekey provides the canonical YYYY-MM-DD calendar date used to join
// holidays, leaves, attendance and sessions that belong to the same local day.
package datekey

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Key is a calendar date in the viewer's time zone, formatted as YYYY-MM-DD.
// The zero value is the empty key and matches nothing.
type Key string

// New builds a key from civil date fields. Out-of-range days and months are
// normalized the same way time.Date does.
func New(year int, month time.Month, day int) Key {
	return fromCivil(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the local calendar date of t in loc.
func FromTime(t time.Time, loc *time.Location) Key {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return New(local.Year(), local.Month(), local.Day())
}

// Parse validates s as a real YYYY-MM-DD date.
func Parse(s string) (Key, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return fromCivil(t), nil
}

func fromCivil(t time.Time) Key {
	return Key(t.Format(Layout))
}

// civil returns the key as midnight UTC. All arithmetic goes through here so
// daylight saving transitions in the viewer's zone never move a date.
func (k Key) civil() time.Time {
	t, err := time.Parse(Layout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k Key) String() string { return string(k) }

func (k Key) IsZero() bool { return k.civil().IsZero() }

func (k Key) Year() int { return k.civil().Year() }

func (k Key) Month() time.Month { return k.civil().Month() }

func (k Key) Day() int { return k.civil().Day() }

func (k Key) Weekday() time.Weekday { return k.civil().Weekday() }

// Time returns local midnight of the date in loc.
func (k Key) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	c := k.civil()
	return time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, loc)
}

// At returns the instant at hour:00 local time on the date. Hour 24 rolls
// over to midnight of the following day.
func (k Key) At(hour int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	c := k.civil()
	return time.Date(c.Year(), c.Month(), c.Day(), hour, 0, 0, 0, loc)
}

func (k Key) AddDays(n int) Key { return fromCivil(k.civil().AddDate(0, 0, n)) }

// AddMonths shifts by n months with time.Date overflow, so Mar 31 minus one
// month lands on Mar 3 (or Mar 2 in leap years).
func (k Key) AddMonths(n int) Key { return fromCivil(k.civil().AddDate(0, n, 0)) }

// DaysUntil returns the whole number of calendar days from k to other.
// It is negative when other is earlier.
func (k Key) DaysUntil(other Key) int {
	return int(other.civil().Sub(k.civil()).Hours() / 24)
}

func (k Key) Before(other Key) bool { return k.civil().Before(other.civil()) }

func (k Key) After(other Key) bool { return k.civil().After(other.civil()) }

func (k Key) Equal(other Key) bool { return k.civil().Equal(other.civil()) }

// StartOfMonth returns the first day of the key's month.
func (k Key) StartOfMonth() Key {
	c := k.civil()
	return New(c.Year(), c.Month(), 1)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekRange returns Monday and Sunday of the week containing k.
func (k Key) WeekRange() (Key, Key) {
	wd := int(k.Weekday())
	diffToMonday := 1 - wd
	if wd == 0 {
		diffToMonday = -6
	}
	monday := k.AddDays(diffToMonday)
	return monday, monday.AddDays(6)
}

// Between lists every date in [from, to]. It returns nil when to is before from.
func Between(from, to Key) []Key {
	if to.Before(from) {
		return nil
	}
	days := make([]Key, 0, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
