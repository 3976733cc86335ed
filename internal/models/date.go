package models

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used everywhere a date is
// rendered: the persisted JSON file, CSV imports and CLI flags.
const DateLayout = "2006-01-02"

// MonthLayout is the grouping key format used by the analytics engine.
const MonthLayout = "2006-01"

// Date is a calendar date without a time component. All dates are normalized
// to midnight UTC so two dates parsed from the same string compare equal.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String renders the date in ISO YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthKey returns the YYYY-MM grouping key for this date.
func (d Date) MonthKey() string {
	return d.Format(MonthLayout)
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string, never as a
// timestamp.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date value %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
