package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/jakkritp/staybooking/internal/platform/logger"
)

// writeError maps domain errors onto the REST taxonomy: validation 400,
// not-found 404, conflicts and invalid transitions 409, upstream storage
// failures 502, everything else 500.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})

	case errors.Is(err, domain.ErrPlaceNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrBookingConflict),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrRoomHasBookings):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})

	case strings.Contains(err.Error(), "upload slip"):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "slip storage is unavailable, try again"})

	case strings.Contains(err.Error(), "invalid"):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	logger.Log.Error("request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
