package participation

import "errors"

var (
	// ErrEventNotJoinable reports a join attempt on a canceled, ended or
	// closed event.
	ErrEventNotJoinable = errors.New("this event is not open for registration")

	// ErrEventFull reports a join attempt on an event at capacity.
	ErrEventFull = errors.New("this event has reached its participant capacity")
)
