package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jakkritp/staybooking/internal/core/services"
)

type RoomHandler struct {
	svc *services.RoomService
}

func NewRoomHandler(svc *services.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// CreatePlace handles POST /places (host only).
func (h *RoomHandler) CreatePlace(c echo.Context) error {
	var req services.CreatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	place, rooms, err := h.svc.CreatePlace(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"place": toPlaceResponse(place),
		"rooms": toRoomResponses(rooms),
	})
}

// GetPlace handles GET /places/:placeID.
func (h *RoomHandler) GetPlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid place id"})
	}

	place, err := h.svc.GetPlace(c.Request().Context(), placeID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toPlaceResponse(place))
}

// ListRooms handles GET /places/:placeID/rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid place id"})
	}

	rooms, err := h.svc.ListRooms(c.Request().Context(), placeID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toRoomResponses(rooms))
}

// AddRoom handles POST /places/:placeID/rooms (host only).
func (h *RoomHandler) AddRoom(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid place id"})
	}

	var req services.RoomInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.svc.AddRoom(c.Request().Context(), placeID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toRoomResponse(room))
}

// DeleteRoom handles DELETE /rooms/:roomID (host only). Deletion is rejected
// while the room still has bookings.
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	if err := h.svc.DeleteRoom(c.Request().Context(), roomID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type setOccupiedRequest struct {
	Occupied *bool `json:"occupied" validate:"required"`
}

// SetOccupied handles PUT /rooms/:roomID/occupied (host only) and reports
// how many bookings the cascade cleared.
func (h *RoomHandler) SetOccupied(c echo.Context) error {
	roomID, err := uuid.Parse(c.Param("roomID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid room id"})
	}

	var req setOccupiedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	room, cleared, err := h.svc.SetOccupied(c.Request().Context(), roomID, *req.Occupied)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"room":             toRoomResponse(room),
		"cleared_bookings": cleared,
	})
}

// SetPaymentInfo handles PUT /places/:placeID/payment-info (host only).
func (h *RoomHandler) SetPaymentInfo(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid place id"})
	}

	var req services.PaymentInfoInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	info, err := h.svc.SetPaymentInfo(c.Request().Context(), placeID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toPaymentInfoResponse(info))
}

// GetPaymentInfo handles GET /places/:placeID/payment-info.
func (h *RoomHandler) GetPaymentInfo(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid place id"})
	}

	info, err := h.svc.GetPaymentInfo(c.Request().Context(), placeID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toPaymentInfoResponse(info))
}
