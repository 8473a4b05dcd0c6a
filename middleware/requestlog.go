package middleware

import (
	"time"

	"club-portal/logger"
	"club-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger records every handled request through the async DB logger.
// Each entry gets its own uuid so a log row can be quoted back to a user.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		var userID uint
		if caller, ok := CallerFromCtx(c); ok {
			userID = caller.UserID
		}

		asyncLogger.Log(types.LogEntry{
			RequestID:  uuid.NewString(),
			Method:     c.Method(),
			URL:        c.OriginalURL(),
			StatusCode: c.Response().StatusCode(),
			UserID:     userID,
			LatencyMS:  time.Since(start).Milliseconds(),
			CreatedAt:  start,
		})
		return err
	}
}
