package event

import (
	"errors"

	"club-portal/logger"
	"club-portal/middleware"
	eventService "club-portal/services/event"
	participationService "club-portal/services/participation"
	"club-portal/services/permission"
	"club-portal/services/timeslot"
	"club-portal/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func callerFromCtx(c *fiber.Ctx) (types.Caller, bool) {
	return middleware.CallerFromCtx(c)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "Missing caller identity",
	})
}

// serviceError maps service failures onto the HTTP taxonomy. Every expected
// failure keeps its specific reason; only unexpected store errors collapse
// into a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, permission.ErrDenied):
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, eventService.ErrEventNotFound),
		errors.Is(err, eventService.ErrBookingNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, eventService.ErrBookingAlreadyUsed),
		errors.Is(err, eventService.ErrEventFinalized),
		errors.Is(err, participationService.ErrEventNotJoinable),
		errors.Is(err, participationService.ErrEventFull),
		errors.Is(err, timeslot.ErrInvalidInterval):
		return badRequest(c, err.Error())
	default:
		logger.Error("Unexpected event service error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
}

// eventIDParam parses the :id route parameter.
func eventIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid event id")
	}
	return uint(id), nil
}
