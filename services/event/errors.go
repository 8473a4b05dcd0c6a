package event

import "errors"

var (
	// ErrEventNotFound reports an event id that does not resolve.
	ErrEventNotFound = errors.New("event not found")

	// ErrBookingNotFound reports a booking id that does not resolve.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBookingAlreadyUsed reports a booking already backing another event.
	// A booking backs at most one event.
	ErrBookingAlreadyUsed = errors.New("this booking already backs an event")

	// ErrEventFinalized reports a transition attempt on a canceled or ended
	// event. Both flags are terminal.
	ErrEventFinalized = errors.New("event is canceled or ended")
)
