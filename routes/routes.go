package routes

import (
	"club-portal/constants"
	bookingController "club-portal/controllers/booking"
	eventController "club-portal/controllers/event"
	notificationController "club-portal/controllers/notification"
	placeController "club-portal/controllers/place"
	serverController "club-portal/controllers/server"
	"club-portal/logger"
	"club-portal/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	bookings := bookingController.NewBookingController(db)
	events := eventController.NewEventController(db)
	places := placeController.NewPlaceController(db)
	notifications := notificationController.NewNotificationController(db)
	server := serverController.NewServerController(db)

	// Start the async request logger processing goroutine
	go asyncLogger.ProcessLog()

	api := app.Group("/api", middleware.RequestLogger(asyncLogger))

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api.Get("/health", server.Health)

	/*=============================================================================
	| Booking Routes (leaders only)
	===============================================================================*/
	bookingGroup := api.Group("/booking",
		middleware.RequireAuthentication(),
		middleware.RequireRoles(constants.RoleLeader),
	)
	bookingGroup.Get("/", bookings.Index)
	bookingGroup.Get("/new", bookings.New)
	bookingGroup.Get("/check", bookings.Check)
	bookingGroup.Post("/", bookings.Store)

	/*=============================================================================
	| Event Routes
	===============================================================================*/
	eventGroup := api.Group("/events", middleware.RequireAuthentication())
	eventGroup.Get("/", events.Index)
	eventGroup.Get("/new", middleware.RequireRoles(constants.RoleLeader, constants.RoleAdmin), events.NewForm)
	eventGroup.Post("/", middleware.RequireRoles(constants.RoleLeader, constants.RoleAdmin), events.Store)
	eventGroup.Get("/:id", events.Show)
	eventGroup.Post("/:id/join", events.Join)
	eventGroup.Post("/:id/toggle", middleware.RequireRoles(constants.RoleLeader, constants.RoleAdmin), events.Toggle)
	eventGroup.Post("/:id/cancel", middleware.RequireRoles(constants.RoleLeader, constants.RoleAdmin), events.Cancel)
	eventGroup.Post("/:id/end", middleware.RequireRoles(constants.RoleLeader, constants.RoleAdmin), events.End)
	eventGroup.Post("/:id/attendance", middleware.RequireRoles(constants.RoleLeader, constants.RoleAdmin), events.Attendance)

	/*=============================================================================
	| Place Routes
	===============================================================================*/
	api.Get("/places", middleware.RequireAuthentication(), places.Index)

	/*=============================================================================
	| Notification Routes
	===============================================================================*/
	notificationGroup := api.Group("/notifications", middleware.RequireAuthentication())
	notificationGroup.Get("/", notifications.Index)
	notificationGroup.Post("/read", notifications.MarkRead)
}
