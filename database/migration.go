package database

import (
	"club-portal/models/booking"
	"club-portal/models/club"
	"club-portal/models/event"
	"club-portal/models/log"
	"club-portal/models/notification"
	"club-portal/models/participation"
	"club-portal/models/place"
	"club-portal/models/user"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema. The unique indexes declared on the
// models carry the integrity rules the services depend on: one slot per
// (place, date, time), one event per booking, one participation row per
// (event, user).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&club.Club{},
		&club.Member{},
		&place.Place{},
		&booking.Booking{},
		&event.Event{},
		&participation.Participation{},
		&notification.Notification{},
		&log.Log{},
	)
}
