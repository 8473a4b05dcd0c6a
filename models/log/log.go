package log

import (
	"time"
)

// Log represents one handled HTTP request.
type Log struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID  string    `gorm:"type:varchar(36);index" json:"request_id"`
	Method     string    `gorm:"type:varchar(10);not null" json:"method"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	StatusCode int       `gorm:"type:int" json:"status_code"`
	UserID     uint      `gorm:"index" json:"user_id"`
	LatencyMS  int64     `gorm:"type:bigint" json:"latency_ms"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
