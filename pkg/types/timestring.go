package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeString is returned when a string cannot be parsed as HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange is returned when arithmetic leaves the 00:00-24:00 range
	ErrTimeOutOfRange = errors.New("time out of range")
)

// minutesPerDay is the upper bound for TimeString arithmetic.
// 24:00 is representable so that an interval end can coincide with midnight.
const minutesPerDay = 24 * 60

// TimeString represents a time of day in "HH:MM" 24h format.
// It is the wire and storage format for slot start times and
// availability window boundaries. The zero value is "00:00".
type TimeString struct {
	minutes int // minutes since midnight, 0..1440
}

// NewTimeString creates a TimeString from the clock component of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromString parses "HH:MM" into a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(s) != 5 || s[2] != ':' {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString{minutes: hh*60 + mm}, nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return TimeString{}, fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString{minutes: minutes}, nil
}

// Minutes returns minutes since midnight.
func (t TimeString) Minutes() int {
	return t.minutes
}

// AddMinutes returns a TimeString shifted forward by the given number of minutes.
// The result must not pass midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	return NewTimeStringFromMinutes(t.minutes + minutes)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes < other.minutes
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes > other.minutes
}

// Equal reports whether t and other denote the same time of day.
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes == other.minutes
}

// String formats the time as "HH:MM".
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalJSON implements json.Marshaler.
func (t TimeString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *TimeString) UnmarshalJSON(data []byte) error {
	if len(data) != 7 || data[0] != '"' || data[6] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidTimeString, string(data))
	}
	parsed, err := NewTimeStringFromString(string(data[1:6]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer. Stored as "HH:MM:SS" for TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

// Scan implements sql.Scanner. Accepts TIME column values as
// time.Time, string or []byte ("HH:MM" or "HH:MM:SS").
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeString{}
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
