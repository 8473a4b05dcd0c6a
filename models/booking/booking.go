package booking

import (
	"time"

	"club-portal/models/place"
)

// Booking reserves one place for one date and one time range. Rows are
// append-only: a booking is never edited after creation, and at most one
// event may consume it.
//
// Time holds the interval as a single "HH:MM-HH:MM" string; consumers split
// on the literal "-". The composite unique index on (place_id, date, time)
// is the store-level backstop against duplicate slots; the overlap check
// itself runs in the booking service before insert.
type Booking struct {
	ID      uint        `gorm:"primaryKey;autoIncrement" json:"book_id"`
	PlaceID uint        `gorm:"not null;uniqueIndex:uniq_place_date_time" json:"place_id"`
	Place   place.Place `gorm:"foreignKey:PlaceID" json:"place,omitempty"`

	// StudentID identifies the requester in the user directory. It is the
	// stable student identifier, not the numeric account id.
	StudentID string `gorm:"type:varchar(32);not null;index" json:"student_id"`

	Name string `gorm:"type:varchar(255);not null" json:"book_name"`
	Date string `gorm:"type:varchar(10);not null;uniqueIndex:uniq_place_date_time" json:"date"`
	Time string `gorm:"type:varchar(11);not null;uniqueIndex:uniq_place_date_time" json:"time"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
