package timeslot

import (
	"os"
	"time"
)

// WindowFromEnv builds the operating window from BOOKING_OPEN/BOOKING_CLOSE
// ("HH:MM"), falling back to DefaultWindow when unset or malformed.
func WindowFromEnv() Window {
	w := DefaultWindow
	if open, ok := envClock("BOOKING_OPEN"); ok {
		w.Open = open
	}
	if closeAt, ok := envClock("BOOKING_CLOSE"); ok && closeAt > w.Open {
		w.Close = closeAt
	}
	return w
}

func envClock(key string) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
