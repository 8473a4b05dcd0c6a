package booking

import (
	"database/sql"
	"time"

	bookingModel "club-portal/models/booking"
	eventModel "club-portal/models/event"
	"club-portal/services/timeslot"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Service owns booking creation and lookup. Bookings are append-only: the
// create path is the only mutation, and a booking is never edited or deleted
// afterwards.
type Service struct {
	DB     *gorm.DB
	Window timeslot.Window
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Window: timeslot.WindowFromEnv()}
}

// CreateInput is the validated-at-the-service booking request.
type CreateInput struct {
	PlaceID   uint
	Date      string
	TimeStart string
	TimeEnd   string
	Name      string
}

// CheckConflict reports whether the requested interval overlaps any existing
// booking for the same place and date. Pure read; serves both the pre-flight
// check endpoint and the gating check inside Create.
func (s *Service) CheckConflict(db *gorm.DB, placeID uint, date string, iv timeslot.Interval) (bool, *bookingModel.Booking, error) {
	var existing []bookingModel.Booking
	if err := db.Where("place_id = ? AND date = ?", placeID, date).Find(&existing).Error; err != nil {
		return false, nil, err
	}
	for i := range existing {
		other, err := timeslot.ParseRange(existing[i].Time, s.Window)
		if err != nil {
			// A malformed stored range should never happen; treat it as
			// occupied rather than silently double-booking the slot.
			return true, &existing[i], nil
		}
		if iv.Overlaps(other) {
			return true, &existing[i], nil
		}
	}
	return false, nil, nil
}

// Create validates the interval, re-checks the conflict inside one
// transaction immediately before insert, and persists the booking. The
// transactional re-check plus the unique (place, date, time) index is how
// the check-then-insert race is closed: under serializable isolation one of
// two concurrent overlapping creates aborts, and the abort surfaces as the
// same ErrSlotTaken the in-transaction check produces.
func (s *Service) Create(studentID string, in CreateInput) (*bookingModel.Booking, error) {
	iv, err := timeslot.New(in.TimeStart, in.TimeEnd, s.Window)
	if err != nil {
		return nil, err
	}
	date, err := timeslot.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	row := bookingModel.Booking{
		PlaceID:   in.PlaceID,
		StudentID: studentID,
		Name:      in.Name,
		Date:      date,
		Time:      iv.String(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		conflict, _, err := s.CheckConflict(tx, in.PlaceID, date, iv)
		if err != nil {
			return err
		}
		if conflict {
			return ErrSlotTaken
		}
		return tx.Create(&row).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &row, nil
}

// ListAvailable returns the requester's future bookings not yet consumed by
// an event, ordered by date then start time ascending. "Future" means a date
// beyond today, or today with the end time still ahead of the clock.
func (s *Service) ListAvailable(studentID string) ([]bookingModel.Booking, error) {
	today := now.BeginningOfDay().Format("2006-01-02")
	nowClock := time.Now().Format("15:04")

	var rows []bookingModel.Booking
	err := s.DB.Preload("Place").
		Where("student_id = ? AND date >= ?", studentID, today).
		Where("id NOT IN (?)", s.DB.Model(&eventModel.Event{}).Select("booking_id")).
		Order("date ASC, time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	available := rows[:0]
	for _, row := range rows {
		if row.Date > today {
			available = append(available, row)
			continue
		}
		if iv, err := timeslot.ParseRange(row.Time, s.Window); err == nil && iv.EndClock() >= nowClock {
			available = append(available, row)
		}
	}
	return available, nil
}

// ListRow is one line of the booking table view.
type ListRow struct {
	ReserverName string `json:"reserver_name"`
	BookName     string `json:"book_name"`
	PlaceName    string `json:"place_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// ListAll returns every booking with reserver and place names, newest first.
func (s *Service) ListAll() ([]ListRow, error) {
	var rows []ListRow
	err := s.DB.Model(&bookingModel.Booking{}).
		Select("users.first_name || ' ' || users.last_name AS reserver_name, " +
			"bookings.name AS book_name, places.name AS place_name, bookings.date, bookings.time").
		Joins("JOIN users ON users.student_id = bookings.student_id").
		Joins("JOIN places ON places.id = bookings.place_id").
		Order("bookings.date DESC, bookings.time DESC").
		Scan(&rows).Error
	return rows, err
}

// Get loads one booking with its place.
func (s *Service) Get(id uint) (*bookingModel.Booking, error) {
	var row bookingModel.Booking
	if err := s.DB.Preload("Place").First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
