package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jakkritp/staybooking/internal/core/services"
)

type AvailabilityHandler struct {
	svc *services.AvailabilityService
}

func NewAvailabilityHandler(svc *services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// GetPlaceAvailability handles GET /places/:placeID/availability and returns
// every room of the place with its availability and conflicting ranges, so a
// calendar can be rendered from one call.
func (h *AvailabilityHandler) GetPlaceAvailability(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid place id"})
	}

	stay, err := services.ParseStay(c.QueryParam("check_in"), c.QueryParam("check_out"))
	if err != nil {
		return writeError(c, err)
	}

	rooms, err := h.svc.ForPlace(c.Request().Context(), placeID, stay)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"place_id": placeID.String(),
		"rooms":    rooms,
	})
}

// GetRoomAvailability handles GET /places/:placeID/rooms/:roomID/availability.
func (h *AvailabilityHandler) GetRoomAvailability(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	stay, err := services.ParseStay(c.QueryParam("check_in"), c.QueryParam("check_out"))
	if err != nil {
		return writeError(c, err)
	}

	available, err := h.svc.ForRoom(c.Request().Context(), roomID, stay)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"room_id":   roomID.String(),
		"available": available,
	})
}
