package handler

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jakkritp/staybooking/internal/core/services"
)

type PaymentHandler struct {
	svc          *services.PaymentService
	webhookToken string
}

func NewPaymentHandler(svc *services.PaymentService, webhookToken string) *PaymentHandler {
	return &PaymentHandler{svc: svc, webhookToken: webhookToken}
}

// UploadSlip handles POST /bookings/:bookingID/slip (multipart form, field
// "slip"). The payment moves to pending review once the file is stored.
func (h *PaymentHandler) UploadSlip(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}

	fileHeader, err := c.FormFile("slip")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "slip file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read slip file"})
	}

	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read slip file"})
	}

	booking, err := h.svc.UploadSlip(c.Request().Context(), bookingID, fileHeader.Filename, data)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

type paymentDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

// DecidePayment handles POST /bookings/:bookingID/payment (admin only).
func (h *PaymentHandler) DecidePayment(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}

	var req paymentDecisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.Decide(c.Request().Context(), bookingID, req.Decision == "approve")
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

type gatewayCallbackRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Status    string `json:"status" validate:"required,oneof=success failed"`
}

// GatewayCallback handles POST /webhooks/payment-gateway. The gateway
// authenticates with a shared token instead of a user JWT.
func (h *PaymentHandler) GatewayCallback(c echo.Context) error {
	if h.webhookToken != "" && c.Request().Header.Get("X-Gateway-Token") != h.webhookToken {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid gateway token"})
	}

	var req gatewayCallbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid booking id"})
	}

	booking, err := h.svc.HandleGatewayCallback(c.Request().Context(), bookingID, req.Status == "success")
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toBookingResponse(booking))
}
