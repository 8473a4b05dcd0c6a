package timeslot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInterval reports a time value that violates the grid, the
// operating window, or start/end ordering. Wrapped errors carry the
// user-facing reason.
var ErrInvalidInterval = errors.New("invalid interval")

const (
	gridMinutes = 30
	dateLayout  = "2006-01-02"
)

// Window is the bookable time-of-day range, inclusive at both ends.
// Both bounds are minutes since midnight.
type Window struct {
	Open  int
	Close int
}

// DefaultWindow is the campus facility operating window, 08:00–18:00.
var DefaultWindow = Window{Open: 8 * 60, Close: 18 * 60}

// Interval is a time-of-day range on the 30-minute grid. Start and End are
// minutes since midnight with Start strictly before End.
type Interval struct {
	Start int
	End   int
}

// ParseClock parses an "HH:MM" value on the 30-minute grid inside w.
func ParseClock(value string, w Window) (int, error) {
	// time.Parse would accept "8:00"; the wire format is strictly HH:MM.
	t, err := time.Parse("15:04", value)
	if err != nil || len(value) != 5 {
		return 0, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInterval, value)
	}
	if t.Minute() != 0 && t.Minute() != gridMinutes {
		return 0, fmt.Errorf("%w: minutes must be 00 or 30, got %q", ErrInvalidInterval, value)
	}
	minutes := t.Hour()*60 + t.Minute()
	if minutes < w.Open || minutes > w.Close {
		return 0, fmt.Errorf("%w: %q is outside the %s-%s operating window",
			ErrInvalidInterval, value, FormatClock(w.Open), FormatClock(w.Close))
	}
	return minutes, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// New builds an interval from two "HH:MM" values, enforcing grid, window and
// strict start < end ordering.
func New(start, end string, w Window) (Interval, error) {
	s, err := ParseClock(start, w)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end, w)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, fmt.Errorf("%w: end %q must be after start %q", ErrInvalidInterval, end, start)
	}
	return Interval{Start: s, End: e}, nil
}

// ParseRange parses a persisted "HH:MM-HH:MM" value. Stored ranges split on
// the literal "-"; values were validated on the way in, so only shape is
// checked here.
func ParseRange(value string, w Window) (Interval, error) {
	parts := strings.SplitN(value, "-", 2)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("%w: range %q must be HH:MM-HH:MM", ErrInvalidInterval, value)
	}
	return New(parts[0], parts[1], w)
}

// String renders the interval in its persisted "HH:MM-HH:MM" form.
func (iv Interval) String() string {
	return FormatClock(iv.Start) + "-" + FormatClock(iv.End)
}

// StartClock renders the start bound as "HH:MM".
func (iv Interval) StartClock() string {
	return FormatClock(iv.Start)
}

// EndClock renders the end bound as "HH:MM".
func (iv Interval) EndClock() string {
	return FormatClock(iv.End)
}

// Overlaps applies the inclusive boundary rule: touching endpoints conflict,
// so a booking ending 09:00 collides with one starting 09:00. Back-to-back
// slots are deliberately rejected to leave setup and cleanup room.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && iv.End >= other.Start
}

// ParseDate validates a calendar date in "YYYY-MM-DD" form and returns it
// normalized.
func ParseDate(value string) (string, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return "", fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInterval, value)
	}
	return t.Format(dateLayout), nil
}
