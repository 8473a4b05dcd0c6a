package booking

import (
	"errors"
	"fmt"

	"club-portal/logger"
	placeModel "club-portal/models/place"
	bookingService "club-portal/services/booking"
	"club-portal/services/timeslot"
	"club-portal/types"
	bookingTypes "club-portal/types/booking"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController handles the room-booking routes.
type BookingController struct {
	DB      *gorm.DB
	Service *bookingService.Service
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:      db,
		Service: bookingService.NewService(db),
	}
}

// Index lists every booking with reserver and place names, newest first.
func (bc *BookingController) Index(c *fiber.Ctx) error {
	rows, err := bc.Service.ListAll()
	if err != nil {
		logger.Error("Failed to list bookings", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    rows,
	})
}

// New returns the booking form data: the list of bookable places.
func (bc *BookingController) New(c *fiber.Ctx) error {
	var places []placeModel.Place
	if err := bc.DB.Find(&places).Error; err != nil {
		logger.Error("Failed to list places", err)
		return internalError(c)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Places retrieved successfully",
		Data:    places,
	})
}

// Check is the pre-flight conflict check. It never writes; the create path
// re-checks on its own right before insert.
func (bc *BookingController) Check(c *fiber.Ctx) error {
	var query bookingTypes.ConflictCheckQuery
	if err := c.QueryParser(&query); err != nil {
		return badRequest(c, "Invalid query parameters")
	}
	if err := query.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	iv, err := timeslot.New(query.TimeStart, query.TimeEnd, bc.Service.Window)
	if err != nil {
		return badRequest(c, err.Error())
	}
	date, err := timeslot.ParseDate(query.Date)
	if err != nil {
		return badRequest(c, err.Error())
	}

	conflict, hit, err := bc.Service.CheckConflict(bc.DB, query.PlaceID, date, iv)
	if err != nil {
		logger.Error("Conflict check failed", err)
		return internalError(c)
	}

	data := fiber.Map{"conflict": conflict}
	if conflict && hit != nil {
		data["conflicting_booking"] = fiber.Map{
			"book_id":   hit.ID,
			"book_name": hit.Name,
			"time":      hit.Time,
		}
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Conflict check completed",
		Data:    data,
	})
}

// Store creates a booking for the caller. The requester identity is the
// caller's student id from the session, never a form field.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse booking request body", err)
		return badRequest(c, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	caller, ok := callerFromCtx(c)
	if !ok {
		return unauthorized(c)
	}

	row, err := bc.Service.Create(caller.StudentID, bookingService.CreateInput{
		PlaceID:   req.PlaceID,
		Date:      req.Date,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
		Name:      req.BookName,
	})
	if errors.Is(err, timeslot.ErrInvalidInterval) {
		return badRequest(c, err.Error())
	}
	if errors.Is(err, bookingService.ErrSlotTaken) {
		return badRequest(c, err.Error())
	}
	if err != nil {
		logger.Error("Failed to create booking", err)
		return internalError(c)
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", row.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    row,
	})
}
