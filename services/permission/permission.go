package permission

import (
	"errors"

	"club-portal/constants"
	"club-portal/models/club"

	"gorm.io/gorm"
)

// Capability checks for club-scoped actions. All role comparisons live here
// so handlers never string-match roles themselves.

// CanManageClub reports whether the portal role may run leader actions
// (bookings, event lifecycle, attendance).
func CanManageClub(role string) bool {
	return role == constants.RoleLeader || role == constants.RoleAdmin
}

// IsOrganizerRole reports whether the role is an organizer role. Organizers
// are deliberately barred from participating in their own club's events.
func IsOrganizerRole(role string) bool {
	return CanManageClub(role)
}

// ApprovedMembership returns the caller's approved membership in the club,
// or (nil, nil) when there is none.
func ApprovedMembership(db *gorm.DB, clubID, userID uint) (*club.Member, error) {
	var member club.Member
	err := db.Where("club_id = ? AND user_id = ? AND status = ?",
		clubID, userID, constants.MembershipApproved).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// IsApprovedManager reports whether the user holds an approved membership in
// the club and a role allowed to manage it.
func IsApprovedManager(db *gorm.DB, clubID, userID uint, role string) (bool, error) {
	if !CanManageClub(role) {
		return false, nil
	}
	member, err := ApprovedMembership(db, clubID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// LeaderClubs lists club ids where the user is an approved leader. Used to
// auto-detect the club on the event form when none is given.
func LeaderClubs(db *gorm.DB, userID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&club.Member{}).
		Where("user_id = ? AND role = ? AND status = ?",
			userID, constants.RoleLeader, constants.MembershipApproved).
		Pluck("club_id", &ids).Error
	return ids, err
}
