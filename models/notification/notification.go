package notification

import (
	"time"
)

// Notification is one message for one user. Inserts are fire-and-forget:
// a failed insert is logged and skipped, never rolled into the transaction
// of the action that produced it.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ClubID    uint      `gorm:"index" json:"club_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
