package place

import (
	"club-portal/logger"
	placeModel "club-portal/models/place"
	"club-portal/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PlaceController serves the place catalog. Places are seeded by facility
// administration; this backend only reads them.
type PlaceController struct {
	DB *gorm.DB
}

func NewPlaceController(db *gorm.DB) *PlaceController {
	return &PlaceController{DB: db}
}

// Index lists every bookable place.
func (pc *PlaceController) Index(c *fiber.Ctx) error {
	var places []placeModel.Place
	if err := pc.DB.Order("name ASC").Find(&places).Error; err != nil {
		logger.Error("Failed to list places", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Places retrieved successfully",
		Data:    places,
	})
}
