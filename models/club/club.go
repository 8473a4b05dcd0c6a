package club

import (
	"time"

	"club-portal/models/user"
)

// Club is the organizing entity members join; it owns events and is the unit
// of leadership.
type Club struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       user.User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Member is one user's membership in one club. Approval state and club role
// are maintained by the membership flows outside this backend; the portal
// consults them as a capability check only.
type Member struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClubID uint      `gorm:"not null;uniqueIndex:uniq_club_user" json:"club_id"`
	Club   Club      `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	UserID uint      `gorm:"not null;uniqueIndex:uniq_club_user" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Role   string    `gorm:"type:varchar(20);not null;default:member" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
