package event

import (
	"time"

	"club-portal/models/booking"
	"club-portal/models/club"
)

// Event is a club activity backed 1:1 by a booking. Date, times and place
// name are copied from the booking at creation time, not live-linked, so a
// later change to the place row never moves a published event.
type Event struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClubID uint      `gorm:"not null;index" json:"club_id"`
	Club   club.Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`

	// BookingID is unique: one booking backs at most one event.
	BookingID uint            `gorm:"not null;unique" json:"booking_id"`
	Booking   booking.Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`

	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	Date      string `gorm:"type:varchar(10);not null" json:"date"`
	TimeStart string `gorm:"type:varchar(5);not null" json:"time_start"`
	TimeEnd   string `gorm:"type:varchar(5);not null" json:"time_end"`
	PlaceName string `gorm:"type:varchar(255);not null" json:"place_name"`

	// Capacity caps active participants when set; nil means unlimited.
	Capacity *int `gorm:"type:int" json:"capacity,omitempty"`

	IsOpen     bool `gorm:"not null;default:true" json:"is_open"`
	IsCanceled bool `gorm:"not null;default:false" json:"is_canceled"`
	IsEnded    bool `gorm:"not null;default:false" json:"is_ended"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
