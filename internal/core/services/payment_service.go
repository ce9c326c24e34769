package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/jakkritp/staybooking/internal/core/ports"
	"github.com/jakkritp/staybooking/internal/platform/logger"
)

// PaymentService drives the payment state machine: slip upload and manual
// review for bank transfers, and the gateway callback for card payments.
type PaymentService struct {
	bookingRepo ports.BookingRepository
	slips       ports.SlipStorage
}

func NewPaymentService(bookingRepo ports.BookingRepository, slips ports.SlipStorage) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		slips:       slips,
	}
}

// UploadSlip stores a transfer slip and moves the payment into review. The
// booking row is only written after the upload succeeded, so a storage
// failure never leaves a half-updated payment state.
func (s *PaymentService) UploadSlip(ctx context.Context, bookingID uuid.UUID, filename string, data []byte) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Reject an impossible transition before paying for the upload.
	probe := *booking
	if err := probe.AttachSlip(""); err != nil {
		return nil, err
	}

	ref, err := s.slips.Upload(ctx, filename, data)
	if err != nil {
		return nil, fmt.Errorf("upload slip: %w", err)
	}

	if err := booking.AttachSlip(ref); err != nil {
		return nil, err
	}

	booking.UpdatedAt = time.Now().UTC()
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("persist slip: %w", err)
	}

	return booking, nil
}

// Decide applies an admin review decision on a slip under review: approval
// marks the payment paid and confirms the booking, rejection sends it back
// to the guest for re-upload.
func (s *PaymentService) Decide(ctx context.Context, bookingID uuid.UUID, approve bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if approve {
		err = booking.ConfirmPayment()
	} else {
		err = booking.RejectPayment()
	}
	if err != nil {
		return nil, err
	}

	booking.UpdatedAt = time.Now().UTC()
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("persist payment decision: %w", err)
	}

	return booking, nil
}

// HandleGatewayCallback applies a card-gateway result. Success confirms the
// booking directly; a failed charge leaves the booking untouched so the
// guest can pay again.
func (s *PaymentService) HandleGatewayCallback(ctx context.Context, bookingID uuid.UUID, success bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !success {
		logger.Log.Warn("gateway reported failed charge", "booking_id", bookingID.String())
		return booking, nil
	}

	if err := booking.ConfirmByGateway(); err != nil {
		return nil, err
	}

	booking.UpdatedAt = time.Now().UTC()
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("persist gateway confirmation: %w", err)
	}

	return booking, nil
}
