package notification

import (
	"club-portal/logger"
	"club-portal/middleware"
	"club-portal/services/notify"
	"club-portal/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NotificationController serves the caller's notification feed.
type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// Index returns the latest notifications plus the unread count.
func (nc *NotificationController) Index(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Missing caller identity",
		})
	}

	rows, err := notify.Recent(nc.DB, caller.UserID, 10)
	if err != nil {
		logger.Error("Failed to list notifications", err)
		return internalError(c)
	}
	unread, err := notify.UnreadCount(nc.DB, caller.UserID)
	if err != nil {
		logger.Error("Failed to count unread notifications", err)
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notifications retrieved successfully",
		Data: fiber.Map{
			"notifications": rows,
			"unread_count":  unread,
		},
	})
}

// MarkRead flags all of the caller's notifications as read.
func (nc *NotificationController) MarkRead(c *fiber.Ctx) error {
	caller, ok := middleware.CallerFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Missing caller identity",
		})
	}
	if err := notify.MarkAllRead(nc.DB, caller.UserID); err != nil {
		logger.Error("Failed to mark notifications read", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notifications marked as read",
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
	})
}
