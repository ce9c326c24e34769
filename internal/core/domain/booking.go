package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRejected PaymentStatus = "rejected"
)

// Booking reserves exactly one room for a half-open date range. The booking
// lifecycle (Status) and the payment lifecycle (PaymentStatus) are separate
// state machines; they only touch where payment confirmation also confirms
// the booking.
type Booking struct {
	ID            uuid.UUID
	RoomID        uuid.UUID
	PlaceID       uuid.UUID
	GuestID       uuid.UUID
	Stay          StayRange
	TotalPrice    float64
	Status        BookingStatus
	PaymentStatus PaymentStatus
	PaymentSlip   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive reports whether the booking blocks its date range.
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// Cancel releases the booking's range. Cancelling an already-cancelled
// booking is a no-op.
func (b *Booking) Cancel() error {
	if b.Status == BookingCancelled {
		return nil
	}

	if b.Status == BookingCompleted {
		return ErrInvalidTransition
	}

	b.Status = BookingCancelled
	return nil
}

// AttachSlip records an uploaded transfer slip and moves the payment into
// review. A rejected payment may be re-submitted.
func (b *Booking) AttachSlip(ref string) error {
	if b.PaymentStatus != PaymentUnpaid && b.PaymentStatus != PaymentRejected {
		return ErrInvalidTransition
	}

	if !b.IsActive() {
		return ErrInvalidTransition
	}

	b.PaymentStatus = PaymentPending
	b.PaymentSlip = ref
	return nil
}

// ConfirmPayment approves a slip under review and confirms the booking.
func (b *Booking) ConfirmPayment() error {
	if b.PaymentStatus != PaymentPending || b.Status != BookingPending {
		return ErrInvalidTransition
	}

	b.PaymentStatus = PaymentPaid
	b.Status = BookingConfirmed
	return nil
}

// RejectPayment sends a slip back to the guest; the booking itself stays
// pending and the guest may upload a new slip.
func (b *Booking) RejectPayment() error {
	if b.PaymentStatus != PaymentPending {
		return ErrInvalidTransition
	}

	b.PaymentStatus = PaymentRejected
	return nil
}

// ConfirmByGateway applies a successful card-gateway callback, which skips
// slip review entirely.
func (b *Booking) ConfirmByGateway() error {
	if b.Status != BookingPending {
		return ErrInvalidTransition
	}

	b.PaymentStatus = PaymentPaid
	b.Status = BookingConfirmed
	return nil
}
