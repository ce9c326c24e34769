package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/jakkritp/staybooking/internal/core/domain"
)

type RoomRepository interface {
	GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	// Delete fails with domain.ErrRoomHasBookings while any booking still
	// references the room.
	Delete(ctx context.Context, roomID uuid.UUID) error
	// SetOccupied updates the manual flag and, when flipping an occupied room
	// back to free, clears that room's bookings in the same transaction. It
	// returns the updated room and the number of bookings cleared.
	SetOccupied(ctx context.Context, roomID uuid.UUID, occupied bool) (*domain.Room, int64, error)
}

type BookingRepository interface {
	// Create admits a booking atomically: it locks the room row, re-checks the
	// overlap predicate inside the transaction and inserts only if the range
	// is still free. The loser of a race gets domain.ErrBookingConflict.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.Booking, error)
	// ListActiveByRoom returns pending and confirmed bookings only; cancelled
	// and completed rows never block availability.
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error)
	ListActiveByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) error
	GetByID(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	UpsertPaymentInfo(ctx context.Context, info *domain.PaymentInfo) error
	GetPaymentInfo(ctx context.Context, placeID uuid.UUID) (*domain.PaymentInfo, error)
}

// SlipStorage uploads a transfer slip and returns a stable reference URL.
type SlipStorage interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
