package event

// IsFinalized reports whether the event reached a terminal state. Canceled
// and ended are both monotonic: once set they never clear, and no further
// transition is allowed.
func (e Event) IsFinalized() bool {
	return e.IsCanceled || e.IsEnded
}

// IsJoinable reports whether a member may still join: registration open and
// no terminal flag set. Capacity is checked separately against the current
// participant count.
func (e Event) IsJoinable() bool {
	return e.IsOpen && !e.IsFinalized()
}

// HasCapacityLimit reports whether the event caps active participants.
func (e Event) HasCapacityLimit() bool {
	return e.Capacity != nil && *e.Capacity > 0
}
