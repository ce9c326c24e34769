package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/jakkritp/staybooking/internal/core/ports"
)

type CreateBookingRequest struct {
	PlaceID  string `json:"place_id" validate:"required,uuid4"`
	RoomID   string `json:"room_id" validate:"required,uuid4"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

// BookingService is the write path of the ledger: it admits a booking only if
// the room is free for the whole range, and it never retries a lost race —
// the dates are genuinely taken.
type BookingService struct {
	roomRepo    ports.RoomRepository
	bookingRepo ports.BookingRepository
}

func NewBookingService(roomRepo ports.RoomRepository, bookingRepo ports.BookingRepository) *BookingService {
	return &BookingService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

// CreateBooking runs the admission sequence: validate the range, pre-check
// availability, then insert. The insert itself re-checks under a room lock,
// so two racing requests for overlapping ranges produce exactly one booking
// and one conflict error.
func (s *BookingService) CreateBooking(ctx context.Context, guestID uuid.UUID, req CreateBookingRequest) (*domain.Booking, error) {
	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		return nil, errors.New("invalid place id")
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, errors.New("invalid room id")
	}

	stay, err := ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.PlaceID != placeID {
		return nil, domain.ErrRoomNotFound
	}

	if room.Occupied {
		return nil, domain.ErrRoomUnavailable
	}

	existing, err := s.bookingRepo.ListActiveByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	for _, b := range existing {
		if stay.Overlaps(b.Stay) {
			return nil, domain.ErrRoomUnavailable
		}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New(),
		RoomID:        roomID,
		PlaceID:       placeID,
		GuestID:       guestID,
		Stay:          stay,
		TotalPrice:    float64(stay.Nights()) * room.Price,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// CancelBooking marks the booking cancelled, which frees its range for the
// next admission check immediately. Cancelling twice is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	wasCancelled := booking.Status == domain.BookingCancelled

	if err := booking.Cancel(); err != nil {
		return nil, err
	}

	if !wasCancelled {
		booking.UpdatedAt = time.Now().UTC()
		if err := s.bookingRepo.Update(ctx, booking); err != nil {
			return nil, fmt.Errorf("persist cancellation: %w", err)
		}
	}

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *BookingService) ListGuestBookings(ctx context.Context, guestID uuid.UUID) ([]domain.Booking, error) {
	return s.bookingRepo.ListByGuest(ctx, guestID)
}
