package participation

import (
	"time"

	"club-portal/models/user"
)

// Participation is one user's record against one event. The unique key on
// (event_id, user_id) makes join and attendance upserts overwrite in place;
// there is never more than one row per pair and no status history.
type Participation struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID uint      `gorm:"not null;uniqueIndex:uniq_event_user" json:"event_id"`
	UserID  uint      `gorm:"not null;uniqueIndex:uniq_event_user" json:"user_id"`
	User    user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Status   string    `gorm:"type:varchar(20);not null;default:joined" json:"status"`
	Points   int       `gorm:"not null;default:0" json:"points"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
