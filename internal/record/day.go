package record

import (
	"errors"
	"regexp"
	"time"
)

// ErrInvalidDate is returned when a caller-supplied date string does not
// match the YYYY-MM-DD calendar-date shape.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

const dayLayout = "2006-01-02"

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Day is a calendar day with no time-of-day or timezone component.
// It is the canonical date representation for all log and insight records;
// conversion to and from strings or timestamps happens only at boundaries.
type Day struct {
	t time.Time
}

// ParseDay parses a YYYY-MM-DD string into a Day. The string must match
// that exact shape; anything else fails with ErrInvalidDate.
func ParseDay(s string) (Day, error) {
	if !dayPattern.MatchString(s) {
		return Day{}, ErrInvalidDate
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return Day{t: t.UTC()}, nil
}

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Time returns the day as a midnight-UTC timestamp, for store boundaries.
func (d Day) Time() time.Time {
	return d.t
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

func (d Day) Before(o Day) bool {
	return d.t.Before(o.t)
}

func (d Day) After(o Day) bool {
	return d.t.After(o.t)
}

func (d Day) Equal(o Day) bool {
	return d.t.Equal(o.t)
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// MarshalJSON encodes the day as a quoted YYYY-MM-DD string.
func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string.
func (d *Day) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
