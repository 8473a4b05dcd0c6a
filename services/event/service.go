package event

import (
	"errors"
	"fmt"

	"club-portal/constants"
	bookingModel "club-portal/models/booking"
	"club-portal/models/club"
	eventModel "club-portal/models/event"
	participationModel "club-portal/models/participation"
	"club-portal/services/notify"
	"club-portal/services/permission"
	"club-portal/services/timeslot"
	"club-portal/types"

	"gorm.io/gorm"
)

// Service owns the event lifecycle. Events are mutated only through the
// transitions here; there is no generic update and no hard delete.
type Service struct {
	DB     *gorm.DB
	Window timeslot.Window
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Window: timeslot.WindowFromEnv()}
}

// CreateInput carries the event-creation form fields.
type CreateInput struct {
	ClubID      uint
	BookingID   uint
	Title       string
	Description string
	Capacity    *int
	IsOpen      *bool
}

// Create turns an unconsumed booking into an event. Date, times and place
// name are copied from the booking at creation time. Returns the pending
// member notifications for the caller to send after commit.
func (s *Service) Create(caller types.Caller, in CreateInput) (*eventModel.Event, []notify.Pending, error) {
	manager, err := permission.IsApprovedManager(s.DB, in.ClubID, caller.UserID, caller.Role)
	if err != nil {
		return nil, nil, err
	}
	if !manager {
		return nil, nil, fmt.Errorf("%w: must be an approved leader or admin of this club", permission.ErrDenied)
	}

	var source bookingModel.Booking
	err = s.DB.Preload("Place").First(&source, in.BookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	iv, err := timeslot.ParseRange(source.Time, s.Window)
	if err != nil {
		return nil, nil, err
	}

	isOpen := true
	if in.IsOpen != nil {
		isOpen = *in.IsOpen
	}

	row := eventModel.Event{
		ClubID:      in.ClubID,
		BookingID:   source.ID,
		Title:       in.Title,
		Description: in.Description,
		Date:        source.Date,
		TimeStart:   iv.StartClock(),
		TimeEnd:     iv.EndClock(),
		PlaceName:   source.Place.Name,
		Capacity:    in.Capacity,
		IsOpen:      isOpen,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var consumed int64
		if err := tx.Model(&eventModel.Event{}).
			Where("booking_id = ?", source.ID).Count(&consumed).Error; err != nil {
			return err
		}
		if consumed > 0 {
			return ErrBookingAlreadyUsed
		}
		return tx.Create(&row).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The unique index on booking_id fired: a concurrent create
		// consumed the booking between the count and the insert.
		return nil, nil, ErrBookingAlreadyUsed
	}
	if err != nil {
		return nil, nil, err
	}

	pending, err := s.memberAnnouncements(in.ClubID, caller.UserID,
		fmt.Sprintf("New event: %s on %s at %s", row.Title, row.Date, row.PlaceName))
	if err != nil {
		return &row, nil, nil
	}
	return &row, pending, nil
}

// ToggleRegistration flips the registration flag unless the event reached a
// terminal state.
func (s *Service) ToggleRegistration(caller types.Caller, eventID uint) (*eventModel.Event, error) {
	row, err := s.load(eventID)
	if err != nil {
		return nil, err
	}
	if row.IsFinalized() {
		return nil, ErrEventFinalized
	}
	if err := s.requireManager(caller, row.ClubID); err != nil {
		return nil, err
	}

	row.IsOpen = !row.IsOpen
	if err := s.DB.Model(row).Update("is_open", row.IsOpen).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Cancel marks the event canceled and closes registration. Re-canceling is
// a no-op. Returns pending notifications for everyone who had joined.
func (s *Service) Cancel(caller types.Caller, eventID uint) (*eventModel.Event, []notify.Pending, error) {
	row, err := s.load(eventID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.requireManager(caller, row.ClubID); err != nil {
		return nil, nil, err
	}
	if row.IsCanceled {
		return row, nil, nil
	}

	row.IsCanceled = true
	row.IsOpen = false
	err = s.DB.Model(row).Updates(map[string]interface{}{
		"is_canceled": true,
		"is_open":     false,
	}).Error
	if err != nil {
		return nil, nil, err
	}

	pending, err := s.participantAnnouncements(row.ID, row.ClubID,
		fmt.Sprintf("Event canceled: %s on %s", row.Title, row.Date))
	if err != nil {
		return row, nil, nil
	}
	return row, pending, nil
}

// End marks the event ended and closes registration. Re-ending is a no-op.
func (s *Service) End(caller types.Caller, eventID uint) (*eventModel.Event, error) {
	row, err := s.load(eventID)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(caller, row.ClubID); err != nil {
		return nil, err
	}
	if row.IsEnded {
		return row, nil
	}

	row.IsEnded = true
	row.IsOpen = false
	err = s.DB.Model(row).Updates(map[string]interface{}{
		"is_ended": true,
		"is_open":  false,
	}).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Detail is the event page payload: the event, its participants and what the
// caller may do with it.
type Detail struct {
	Event         eventModel.Event                   `json:"event"`
	ClubTitle     string                             `json:"club_title"`
	Participants  []participationModel.Participation `json:"participants"`
	CanJoin       bool                               `json:"can_join"`
	CanManage     bool                               `json:"can_manage"`
	AlreadyJoined bool                               `json:"already_joined"`
}

// Get loads the event detail for the caller.
func (s *Service) Get(caller types.Caller, eventID uint) (*Detail, error) {
	row, err := s.load(eventID)
	if err != nil {
		return nil, err
	}

	var clubRow club.Club
	if err := s.DB.First(&clubRow, row.ClubID).Error; err != nil {
		return nil, err
	}

	var participants []participationModel.Participation
	err = s.DB.Preload("User").
		Where("event_id = ?", row.ID).
		Order("joined_at DESC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}

	member, err := permission.ApprovedMembership(s.DB, row.ClubID, caller.UserID)
	if err != nil {
		return nil, err
	}

	alreadyJoined := false
	for _, p := range participants {
		if p.UserID == caller.UserID {
			alreadyJoined = true
			break
		}
	}

	isOrganizer := permission.IsOrganizerRole(caller.Role)
	return &Detail{
		Event:         *row,
		ClubTitle:     clubRow.Title,
		Participants:  participants,
		CanJoin:       member != nil && !isOrganizer,
		CanManage:     member != nil && isOrganizer,
		AlreadyJoined: alreadyJoined,
	}, nil
}

// List returns the events visible to the caller: admins see everything,
// everyone else sees their approved clubs' events. Newest first.
func (s *Service) List(caller types.Caller) ([]eventModel.Event, error) {
	var rows []eventModel.Event
	query := s.DB.Preload("Club").Order("events.date DESC, events.time_start DESC")
	if caller.Role != constants.RoleAdmin {
		query = query.
			Select("events.*").
			Joins("JOIN club_members ON club_members.club_id = events.club_id").
			Where("club_members.user_id = ? AND club_members.status = ?",
				caller.UserID, constants.MembershipApproved)
	}
	err := query.Find(&rows).Error
	return rows, err
}

func (s *Service) load(eventID uint) (*eventModel.Event, error) {
	var row eventModel.Event
	err := s.DB.First(&row, eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *Service) requireManager(caller types.Caller, clubID uint) error {
	manager, err := permission.IsApprovedManager(s.DB, clubID, caller.UserID, caller.Role)
	if err != nil {
		return err
	}
	if !manager {
		return fmt.Errorf("%w: must be an approved leader or admin of this club", permission.ErrDenied)
	}
	return nil
}

// memberAnnouncements builds pending notifications for every approved club
// member except the acting user.
func (s *Service) memberAnnouncements(clubID, actorID uint, message string) ([]notify.Pending, error) {
	var userIDs []uint
	err := s.DB.Model(&club.Member{}).
		Where("club_id = ? AND status = ? AND user_id <> ?",
			clubID, constants.MembershipApproved, actorID).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	pending := make([]notify.Pending, 0, len(userIDs))
	for _, id := range userIDs {
		pending = append(pending, notify.Pending{UserID: id, ClubID: clubID, Message: message})
	}
	return pending, nil
}

// participantAnnouncements builds pending notifications for everyone who
// joined the event.
func (s *Service) participantAnnouncements(eventID, clubID uint, message string) ([]notify.Pending, error) {
	var userIDs []uint
	err := s.DB.Model(&participationModel.Participation{}).
		Where("event_id = ?", eventID).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	pending := make([]notify.Pending, 0, len(userIDs))
	for _, id := range userIDs {
		pending = append(pending, notify.Pending{UserID: id, ClubID: clubID, Message: message})
	}
	return pending, nil
}
