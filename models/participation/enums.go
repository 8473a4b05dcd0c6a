package participation

import "club-portal/constants"

// CountsTowardCapacity reports whether this row occupies a capacity slot.
// Joined and attended occupy a slot; a participant marked absent frees it.
func (p Participation) CountsTowardCapacity() bool {
	return p.Status == constants.ParticipationJoined || p.Status == constants.ParticipationAttended
}

// IsValidStatus reports whether status is one of the participation states.
func IsValidStatus(status string) bool {
	switch status {
	case constants.ParticipationJoined, constants.ParticipationAttended, constants.ParticipationAbsent:
		return true
	default:
		return false
	}
}
