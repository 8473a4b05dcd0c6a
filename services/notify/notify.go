package notify

import (
	"club-portal/logger"
	"club-portal/models/notification"

	"gorm.io/gorm"
)

// Pending is a notification produced by a domain operation but not yet
// delivered. Services return these alongside their primary result; the
// caller applies them with Send after the primary transaction commits, so a
// failed notification never rolls back the state change that produced it.
type Pending struct {
	UserID  uint
	ClubID  uint
	Message string
}

// Send inserts the pending notifications one row at a time, best effort.
// A failed insert is logged and skipped; the remaining rows still go out.
func Send(db *gorm.DB, pending []Pending) {
	for _, p := range pending {
		row := notification.Notification{
			UserID:  p.UserID,
			ClubID:  p.ClubID,
			Message: p.Message,
		}
		if err := db.Create(&row).Error; err != nil {
			logger.Error("Failed to insert notification", err)
		}
	}
}

// UnreadCount counts the user's unread notifications.
func UnreadCount(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// Recent lists the user's latest notifications, newest first.
func Recent(db *gorm.DB, userID uint, limit int) ([]notification.Notification, error) {
	var rows []notification.Notification
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// MarkAllRead flags every unread notification of the user as read.
func MarkAllRead(db *gorm.DB, userID uint) error {
	return db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
