package place

import (
	"time"
)

// Place is a bookable physical resource. Status is informational only; the
// conflict check is the sole authority on availability.
type Place struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"place_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"place_name"`
	Status    string    `gorm:"type:varchar(50)" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
