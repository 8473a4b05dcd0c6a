package participation

import (
	"errors"
	"fmt"

	"club-portal/constants"
	eventModel "club-portal/models/event"
	participationModel "club-portal/models/participation"
	eventService "club-portal/services/event"
	"club-portal/services/permission"
	"club-portal/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service owns the participation ledger. Rows are written only through Join
// and RecordAttendance, both upserts keyed on (event_id, user_id), so a
// double submission can never produce a duplicate row.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Join registers the caller for the event. Organizer roles cannot join:
// leaders and admins run events, they do not attend them. Re-joining is a
// no-op, not an error.
func (s *Service) Join(caller types.Caller, eventID uint) error {
	row, err := s.loadEvent(eventID)
	if err != nil {
		return err
	}

	member, err := permission.ApprovedMembership(s.DB, row.ClubID, caller.UserID)
	if err != nil {
		return err
	}
	if member == nil {
		return fmt.Errorf("%w: must be an approved member of this club", permission.ErrDenied)
	}
	if permission.IsOrganizerRole(caller.Role) {
		return fmt.Errorf("%w: leaders and admins cannot join as participants", permission.ErrDenied)
	}

	if !row.IsJoinable() {
		return ErrEventNotJoinable
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// A caller already holding a slot (joined or attended) just flips
		// back to joined; only callers needing a fresh slot face the
		// capacity check. A participant marked absent gave their slot up.
		var existing participationModel.Participation
		err := tx.Where("event_id = ? AND user_id = ?", row.ID, caller.UserID).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		holdsSlot := err == nil && existing.CountsTowardCapacity()

		if !holdsSlot && row.HasCapacityLimit() {
			count, err := activeCount(tx, row.ID)
			if err != nil {
				return err
			}
			if count >= int64(*row.Capacity) {
				return ErrEventFull
			}
		}

		entry := participationModel.Participation{
			EventID: row.ID,
			UserID:  caller.UserID,
			Status:  constants.ParticipationJoined,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": constants.ParticipationJoined}),
		}).Create(&entry).Error
	})
}

// RecordAttendance upserts a participant's attendance and points. This is a
// leader override, not a join: no capacity check applies, and a user who
// never joined still gets a row.
func (s *Service) RecordAttendance(caller types.Caller, eventID, userID uint, attended bool, points int) error {
	row, err := s.loadEvent(eventID)
	if err != nil {
		return err
	}

	manager, err := permission.IsApprovedManager(s.DB, row.ClubID, caller.UserID, caller.Role)
	if err != nil {
		return err
	}
	if !manager {
		return fmt.Errorf("%w: must be an approved leader or admin of this club", permission.ErrDenied)
	}

	status := constants.ParticipationAbsent
	if attended {
		status = constants.ParticipationAttended
	}
	if points < 0 {
		points = 0
	}

	entry := participationModel.Participation{
		EventID: row.ID,
		UserID:  userID,
		Status:  status,
		Points:  points,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status": status,
			"points": points,
		}),
	}).Create(&entry).Error
}

// ActiveCount counts participants holding a capacity slot (joined or
// attended; absent rows free their slot).
func (s *Service) ActiveCount(eventID uint) (int64, error) {
	return activeCount(s.DB, eventID)
}

func activeCount(db *gorm.DB, eventID uint) (int64, error) {
	var count int64
	err := db.Model(&participationModel.Participation{}).
		Where("event_id = ? AND status IN ?", eventID,
			[]string{constants.ParticipationJoined, constants.ParticipationAttended}).
		Count(&count).Error
	return count, err
}

func (s *Service) loadEvent(eventID uint) (*eventModel.Event, error) {
	var row eventModel.Event
	err := s.DB.First(&row, eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, eventService.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
