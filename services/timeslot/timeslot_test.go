package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := New(start, end, DefaultWindow)
	require.NoError(t, err)
	return iv
}

func TestNewValidatesGrid(t *testing.T) {
	_, err := New("08:00", "08:30", DefaultWindow)
	assert.NoError(t, err, "08:00-08:30 is the grid minimum and must be valid")

	_, err = New("08:00", "08:15", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval, "off-grid minute must be rejected")

	_, err = New("08:10", "09:00", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = New("8:00", "09:00", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval, "hour must be zero-padded HH:MM")
}

func TestNewValidatesWindow(t *testing.T) {
	_, err := New("07:30", "09:00", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval, "start before opening must be rejected")

	_, err = New("17:00", "18:30", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval, "end after closing must be rejected")

	_, err = New("17:30", "18:00", DefaultWindow)
	assert.NoError(t, err, "18:00 close is inclusive")
}

func TestNewValidatesOrdering(t *testing.T) {
	_, err := New("10:00", "10:00", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = New("11:00", "10:00", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestOverlapsSymmetry(t *testing.T) {
	pairs := [][2]Interval{
		{mustInterval(t, "08:00", "09:00"), mustInterval(t, "09:00", "10:00")},
		{mustInterval(t, "08:00", "09:00"), mustInterval(t, "08:30", "09:30")},
		{mustInterval(t, "08:00", "09:00"), mustInterval(t, "09:30", "10:00")},
		{mustInterval(t, "10:00", "12:00"), mustInterval(t, "10:30", "11:00")},
	}
	for _, pair := range pairs {
		assert.Equal(t, pair[0].Overlaps(pair[1]), pair[1].Overlaps(pair[0]),
			"overlap must be symmetric for %s vs %s", pair[0], pair[1])
	}
}

func TestOverlapsInclusiveBoundary(t *testing.T) {
	morning := mustInterval(t, "08:00", "09:00")

	assert.True(t, morning.Overlaps(mustInterval(t, "09:00", "10:00")),
		"touching endpoints count as a conflict")
	assert.True(t, morning.Overlaps(mustInterval(t, "08:30", "09:30")))
	assert.True(t, morning.Overlaps(mustInterval(t, "08:00", "09:00")))
	assert.False(t, morning.Overlaps(mustInterval(t, "09:30", "10:30")),
		"a gap of one grid step is no conflict")
}

func TestRangeRoundTrip(t *testing.T) {
	iv := mustInterval(t, "10:00", "11:30")
	assert.Equal(t, "10:00-11:30", iv.String())

	parsed, err := ParseRange("10:00-11:30", DefaultWindow)
	require.NoError(t, err)
	assert.Equal(t, iv, parsed)

	_, err = ParseRange("10:00", DefaultWindow)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", date)

	_, err = ParseDate("01-05-2024")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
