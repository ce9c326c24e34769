package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/jakkritp/staybooking/internal/core/ports/mocks"
	"github.com/jakkritp/staybooking/internal/core/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) domain.StayRange {
	t.Helper()

	stay, err := domain.NewStayRange(checkIn, checkOut)
	assert.NoError(t, err)
	return stay
}

func TestCreateBooking_Success(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	guestID := uuid.New()
	placeID := uuid.New()
	roomID := uuid.New()

	room := &domain.Room{ID: roomID, PlaceID: placeID, Name: "Deluxe 2", Price: 1000}

	mockRoomRepo.On("GetByID", ctx, roomID).Return(room, nil)
	mockBookingRepo.On("ListActiveByRoom", ctx, roomID).Return([]domain.Booking{}, nil)
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	booking, err := service.CreateBooking(ctx, guestID, services.CreateBookingRequest{
		PlaceID:  placeID.String(),
		RoomID:   roomID.String(),
		CheckIn:  "2025-08-01",
		CheckOut: "2025-08-03",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, booking) {
		assert.Equal(t, 2000.0, booking.TotalPrice)
		assert.Equal(t, domain.BookingPending, booking.Status)
		assert.Equal(t, domain.PaymentUnpaid, booking.PaymentStatus)
		assert.Equal(t, guestID, booking.GuestID)
		assert.Equal(t, 2, booking.Stay.Nights())
	}
}

func TestCreateBooking_RejectsOverlappingRange(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	placeID := uuid.New()
	roomID := uuid.New()

	room := &domain.Room{ID: roomID, PlaceID: placeID, Price: 1000}
	existing := domain.Booking{
		RoomID: roomID,
		Status: domain.BookingPending,
		Stay:   mustStay(t, date(2025, 8, 1), date(2025, 8, 3)),
	}

	mockRoomRepo.On("GetByID", ctx, roomID).Return(room, nil)
	mockBookingRepo.On("ListActiveByRoom", ctx, roomID).Return([]domain.Booking{existing}, nil)

	booking, err := service.CreateBooking(ctx, uuid.New(), services.CreateBookingRequest{
		PlaceID:  placeID.String(),
		RoomID:   roomID.String(),
		CheckIn:  "2025-08-02",
		CheckOut: "2025-08-04",
	})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.Nil(t, booking)
	mockBookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_AdjacentRangesDoNotConflict(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	placeID := uuid.New()
	roomID := uuid.New()

	room := &domain.Room{ID: roomID, PlaceID: placeID, Price: 500}
	existing := domain.Booking{
		RoomID: roomID,
		Status: domain.BookingConfirmed,
		Stay:   mustStay(t, date(2025, 1, 1), date(2025, 1, 3)),
	}

	mockRoomRepo.On("GetByID", ctx, roomID).Return(room, nil)
	mockBookingRepo.On("ListActiveByRoom", ctx, roomID).Return([]domain.Booking{existing}, nil)
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	booking, err := service.CreateBooking(ctx, uuid.New(), services.CreateBookingRequest{
		PlaceID:  placeID.String(),
		RoomID:   roomID.String(),
		CheckIn:  "2025-01-03",
		CheckOut: "2025-01-05",
	})

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestCreateBooking_LostRaceSurfacesConflict(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	placeID := uuid.New()
	roomID := uuid.New()

	room := &domain.Room{ID: roomID, PlaceID: placeID, Price: 1000}

	// The pre-check saw a free range, but another admission committed first
	// and the transactional insert lost.
	mockRoomRepo.On("GetByID", ctx, roomID).Return(room, nil)
	mockBookingRepo.On("ListActiveByRoom", ctx, roomID).Return([]domain.Booking{}, nil)
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(domain.ErrBookingConflict)

	booking, err := service.CreateBooking(ctx, uuid.New(), services.CreateBookingRequest{
		PlaceID:  placeID.String(),
		RoomID:   roomID.String(),
		CheckIn:  "2025-08-01",
		CheckOut: "2025-08-03",
	})

	assert.ErrorIs(t, err, domain.ErrBookingConflict)
	assert.Nil(t, booking)
}

func TestCreateBooking_OccupiedRoomRejected(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	placeID := uuid.New()
	roomID := uuid.New()

	room := &domain.Room{ID: roomID, PlaceID: placeID, Price: 1000, Occupied: true}

	mockRoomRepo.On("GetByID", ctx, roomID).Return(room, nil)

	booking, err := service.CreateBooking(ctx, uuid.New(), services.CreateBookingRequest{
		PlaceID:  placeID.String(),
		RoomID:   roomID.String(),
		CheckIn:  "2025-08-01",
		CheckOut: "2025-08-03",
	})

	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
	assert.Nil(t, booking)
}

func TestCreateBooking_InvalidRangeRejectedBeforeRepoAccess(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	booking, err := service.CreateBooking(context.Background(), uuid.New(), services.CreateBookingRequest{
		PlaceID:  uuid.New().String(),
		RoomID:   uuid.New().String(),
		CheckIn:  "2025-08-03",
		CheckOut: "2025-08-01",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Nil(t, booking)
	mockRoomRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateBooking_RoomFromAnotherPlace(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	roomID := uuid.New()
	room := &domain.Room{ID: roomID, PlaceID: uuid.New(), Price: 1000}

	mockRoomRepo.On("GetByID", ctx, roomID).Return(room, nil)

	booking, err := service.CreateBooking(ctx, uuid.New(), services.CreateBookingRequest{
		PlaceID:  uuid.New().String(),
		RoomID:   roomID.String(),
		CheckIn:  "2025-08-01",
		CheckOut: "2025-08-03",
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Nil(t, booking)
}

func TestCancelBooking_PersistsTransition(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	bookingID := uuid.New()

	stored := &domain.Booking{
		ID:            bookingID,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
		Stay:          mustStay(t, date(2025, 8, 1), date(2025, 8, 3)),
	}

	mockBookingRepo.On("GetByID", ctx, bookingID).Return(stored, nil)
	mockBookingRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingCancelled
	})).Return(nil)

	booking, err := service.CancelBooking(ctx, bookingID)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, booking.Status)
}

func TestCancelBooking_AlreadyCancelledIsNoOp(t *testing.T) {
	mockRoomRepo := mocks.NewRoomRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)

	service := services.NewBookingService(mockRoomRepo, mockBookingRepo)

	ctx := context.Background()
	bookingID := uuid.New()

	stored := &domain.Booking{ID: bookingID, Status: domain.BookingCancelled}

	mockBookingRepo.On("GetByID", ctx, bookingID).Return(stored, nil)

	booking, err := service.CancelBooking(ctx, bookingID)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, booking.Status)
	mockBookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
