package constants

// Portal roles. Roles come from the external user directory; the portal never
// invents new ones, so handlers must only compare against these constants.
const (
	RoleMember = "member"
	RoleLeader = "leader"
	RoleAdmin  = "admin"
)

// Club membership statuses
const (
	MembershipPending  = "pending"
	MembershipApproved = "approved"
	MembershipRejected = "rejected"
)

// Participation statuses
const (
	ParticipationJoined   = "joined"
	ParticipationAttended = "attended"
	ParticipationAbsent   = "absent"
)

// Role groups for convenience
var (
	ClubManagerRoles = []string{
		RoleLeader,
		RoleAdmin,
	}
)

// IsValidRole reports whether role is one of the portal roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleMember, RoleLeader, RoleAdmin:
		return true
	default:
		return false
	}
}
