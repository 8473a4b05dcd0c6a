package event

import (
	"fmt"

	"club-portal/logger"
	bookingService "club-portal/services/booking"
	eventService "club-portal/services/event"
	"club-portal/services/notify"
	participationService "club-portal/services/participation"
	"club-portal/services/permission"
	"club-portal/types"
	eventTypes "club-portal/types/event"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventController handles the event lifecycle and participation routes.
type EventController struct {
	DB             *gorm.DB
	Events         *eventService.Service
	Participations *participationService.Service
	Bookings       *bookingService.Service
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		DB:             db,
		Events:         eventService.NewService(db),
		Participations: participationService.NewService(db),
		Bookings:       bookingService.NewService(db),
	}
}

// NewForm returns the event-creation form data: the resolved club and the
// caller's future bookings not yet consumed by an event. When no club_id is
// given the caller's single led club is auto-detected.
func (ec *EventController) NewForm(c *fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	clubID := uint(c.QueryInt("club_id"))
	if clubID == 0 {
		ids, err := permission.LeaderClubs(ec.DB, caller.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		if len(ids) == 0 {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "No club found where you are a leader",
			})
		}
		clubID = ids[0]
	}

	manager, err := permission.IsApprovedManager(ec.DB, clubID, caller.UserID, caller.Role)
	if err != nil {
		return serviceError(c, err)
	}
	if !manager {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Must be an approved leader or admin of this club",
		})
	}

	bookings, err := ec.Bookings.ListAvailable(caller.StudentID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Available bookings retrieved successfully",
		Data: fiber.Map{
			"club_id":  clubID,
			"bookings": bookings,
		},
	})
}

// Store creates an event from an unconsumed booking. Member notifications go
// out after the event row is committed.
func (ec *EventController) Store(c *fiber.Ctx) error {
	var req eventTypes.EventCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse event request body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	row, pending, err := ec.Events.Create(caller, eventService.CreateInput{
		ClubID:      req.ClubID,
		BookingID:   req.BookingID,
		Title:       req.Title,
		Description: req.Description,
		Capacity:    req.Capacity,
		IsOpen:      req.IsOpen,
	})
	if err != nil {
		return serviceError(c, err)
	}
	notify.Send(ec.DB, pending)

	logger.Success(fmt.Sprintf("Event created successfully with ID: %d", row.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Event created successfully",
		Data:    row,
	})
}

// Index lists the events visible to the caller.
func (ec *EventController) Index(c *fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}
	rows, err := ec.Events.List(caller)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Events retrieved successfully",
		Data:    rows,
	})
}

// Show returns the event detail with participants and caller capabilities.
func (ec *EventController) Show(c *fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	detail, err := ec.Events.Get(caller, eventID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Event retrieved successfully",
		Data:    detail,
	})
}

// Join registers the caller as a participant.
func (ec *EventController) Join(c *fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := ec.Participations.Join(caller, eventID); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Joined event successfully",
	})
}

// Toggle opens or closes registration.
func (ec *EventController) Toggle(c *fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	row, err := ec.Events.ToggleRegistration(caller, eventID)
	if err != nil {
		return serviceError(c, err)
	}
	message := "Registration closed"
	if row.IsOpen {
		message = "Registration opened"
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Data:    row,
	})
}

// Cancel marks the event canceled and notifies joined participants.
func (ec *EventController) Cancel(c *fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	row, pending, err := ec.Events.Cancel(caller, eventID)
	if err != nil {
		return serviceError(c, err)
	}
	notify.Send(ec.DB, pending)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Event canceled",
		Data:    row,
	})
}

// End marks the event ended.
func (ec *EventController) End(c *fiber.Ctx) error {
	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	row, err := ec.Events.End(caller, eventID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Event ended",
		Data:    row,
	})
}

// Attendance records one participant's attendance and points.
func (ec *EventController) Attendance(c *fiber.Ctx) error {
	var req eventTypes.AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse attendance request body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}
	eventID, err := eventIDParam(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := ec.Participations.RecordAttendance(caller, eventID, req.UserID, req.Attended, req.Points); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Attendance recorded successfully",
	})
}
