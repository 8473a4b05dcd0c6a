package user

import (
	"time"
)

// User mirrors the external user directory. The portal reads these rows to
// resolve a caller's student id, display name and role; it never writes them.
type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID string `gorm:"type:varchar(32);not null;unique" json:"student_id"`
	FirstName string `gorm:"type:varchar(255);not null" json:"f_name"`
	LastName  string `gorm:"type:varchar(255);not null" json:"l_name"`
	Email     string `gorm:"type:varchar(255);unique" json:"email"`
	Role      string `gorm:"type:varchar(20);not null;default:member" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// FullName joins first and last name for display lists.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
