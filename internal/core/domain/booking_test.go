package domain_test

import (
	"testing"

	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func TestCancel_IsIdempotent(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, b.Cancel())
	assert.Equal(t, domain.BookingCancelled, b.Status)

	assert.NoError(t, b.Cancel())
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestCancel_CompletedBookingIsFinal(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.BookingCompleted

	assert.ErrorIs(t, b.Cancel(), domain.ErrInvalidTransition)
}

func TestAttachSlip(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, b.AttachSlip("https://img.example/slip1.jpg"))
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Equal(t, "https://img.example/slip1.jpg", b.PaymentSlip)

	// A slip already under review cannot be replaced.
	assert.ErrorIs(t, b.AttachSlip("https://img.example/slip2.jpg"), domain.ErrInvalidTransition)
}

func TestAttachSlip_AllowedAgainAfterRejection(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, b.AttachSlip("https://img.example/slip1.jpg"))
	assert.NoError(t, b.RejectPayment())
	assert.Equal(t, domain.PaymentRejected, b.PaymentStatus)

	assert.NoError(t, b.AttachSlip("https://img.example/slip2.jpg"))
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Equal(t, "https://img.example/slip2.jpg", b.PaymentSlip)
}

func TestAttachSlip_CancelledBookingRejected(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.Cancel())

	assert.ErrorIs(t, b.AttachSlip("https://img.example/slip.jpg"), domain.ErrInvalidTransition)
}

func TestConfirmPayment_ConfirmsBooking(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.AttachSlip("ref"))

	assert.NoError(t, b.ConfirmPayment())
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestConfirmPayment_RequiresSlipUnderReview(t *testing.T) {
	b := pendingBooking()

	assert.ErrorIs(t, b.ConfirmPayment(), domain.ErrInvalidTransition)
}

func TestConfirmPayment_CancelledBookingRejected(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.AttachSlip("ref"))
	assert.NoError(t, b.Cancel())

	assert.ErrorIs(t, b.ConfirmPayment(), domain.ErrInvalidTransition)
}

func TestRejectPayment(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.AttachSlip("ref"))

	assert.NoError(t, b.RejectPayment())
	assert.Equal(t, domain.PaymentRejected, b.PaymentStatus)
	assert.Equal(t, domain.BookingPending, b.Status)

	assert.ErrorIs(t, b.RejectPayment(), domain.ErrInvalidTransition)
}

func TestConfirmByGateway_SkipsSlipReview(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, b.ConfirmByGateway())
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestConfirmByGateway_NonPendingRejected(t *testing.T) {
	b := pendingBooking()
	assert.NoError(t, b.Cancel())

	assert.ErrorIs(t, b.ConfirmByGateway(), domain.ErrInvalidTransition)
}
