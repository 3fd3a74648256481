package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

const (
	// DateLayout is the day-month-year format used for due dates.
	DateLayout = "02-01-2006"
	// TimestampLayout is the format used for created_at and completed_at.
	TimestampLayout = "02-01-2006 15:04:05"

	// Parsing accepts single-digit days and months.
	dateParseLayout      = "2-1-2006"
	timestampParseLayout = "2-1-2006 15:04:05"
)

// ErrEmptyDate is returned when parsing blank date text.
var ErrEmptyDate = errors.New("empty date")

// Date is a calendar date in local time, without a time-of-day component.
type Date struct {
	t time.Time
}

// ParseDate parses day-month-year text such as "25-12-2026".
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrEmptyDate
	}
	t, err := time.ParseInLocation(dateParseLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want DD-MM-YYYY): %w", s, err)
	}
	return Date{t: t}, nil
}

// ParseOptionalDate returns nil when s is blank or not a valid date.
func ParseOptionalDate(s string) *Date {
	d, err := ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	t = t.In(time.Local)
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)}
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String formats the date as DD-MM-YYYY.
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Before reports whether d is strictly earlier than the calendar day of now.
func (d Date) Before(now time.Time) bool {
	return d.t.Before(DateOf(now).t)
}

// After reports whether d is a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// IsOverdue reports whether dueText parses as a date strictly before the day
// of now. Text that does not parse is never overdue.
func IsOverdue(dueText string, now time.Time) bool {
	d, err := ParseDate(dueText)
	if err != nil {
		return false
	}
	return d.Before(now)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timestamp is a local wall-clock instant with second precision.
type Timestamp struct {
	t time.Time
}

// NewTimestamp converts t to local time truncated to the second.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.In(time.Local).Truncate(time.Second)}
}

// ParseTimestamp parses text such as "25-12-2026 14:05:00".
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, ErrEmptyDate
	}
	t, err := time.ParseInLocation(timestampParseLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q (want DD-MM-YYYY HH:MM:SS): %w", s, err)
	}
	return Timestamp{t: t}, nil
}

// IsZero reports whether ts is the zero timestamp.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Date returns the calendar date of the timestamp.
func (ts Timestamp) Date() Date { return DateOf(ts.t) }

// String formats the timestamp as DD-MM-YYYY HH:MM:SS.
func (ts Timestamp) String() string {
	if ts.t.IsZero() {
		return ""
	}
	return ts.t.Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalYAML() (any, error) {
	return ts.String(), nil
}

func (ts *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
