package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jakkritp/staybooking/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// CreateBooking handles POST /bookings. A lost admission race surfaces as a
// 409; the caller should pick different dates rather than retry.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req services.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// CancelBooking handles POST /bookings/:bookingID/cancel.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), bookingID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// GetBooking handles GET /bookings/:bookingID.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// ListMyBookings handles GET /users/me/bookings.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	bookings, err := h.svc.ListGuestBookings(c.Request().Context(), currentUserID(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}
