package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/jakkritp/staybooking/internal/core/ports"
)

const dateLayout = "2006-01-02"

type DateRange struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type RoomAvailability struct {
	RoomID    string      `json:"room_id"`
	RoomName  string      `json:"room_name"`
	Price     float64     `json:"price"`
	Available bool        `json:"available"`
	Conflicts []DateRange `json:"conflicts"`
}

// AvailabilityService is the read side of the ledger: it classifies rooms as
// available or not for a requested range without mutating anything, so it is
// safe to call concurrently and repeatedly. Results are never cached; the
// admission path re-checks inside its own transaction anyway.
type AvailabilityService struct {
	placeRepo   ports.PlaceRepository
	roomRepo    ports.RoomRepository
	bookingRepo ports.BookingRepository
}

func NewAvailabilityService(placeRepo ports.PlaceRepository, roomRepo ports.RoomRepository, bookingRepo ports.BookingRepository) *AvailabilityService {
	return &AvailabilityService{
		placeRepo:   placeRepo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
	}
}

// ForPlace returns, for every room of the place, whether the requested range
// is free plus the ranges of the bookings that block it.
func (s *AvailabilityService) ForPlace(ctx context.Context, placeID uuid.UUID, stay domain.StayRange) ([]RoomAvailability, error) {
	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListActiveByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[uuid.UUID][]domain.Booking)
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	result := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		conflicts := make([]DateRange, 0)
		for _, b := range byRoom[room.ID] {
			if stay.Overlaps(b.Stay) {
				conflicts = append(conflicts, DateRange{
					CheckIn:  b.Stay.CheckIn.Format(dateLayout),
					CheckOut: b.Stay.CheckOut.Format(dateLayout),
				})
			}
		}

		result = append(result, RoomAvailability{
			RoomID:    room.ID.String(),
			RoomName:  room.Name,
			Price:     room.Price,
			Available: !room.Occupied && len(conflicts) == 0,
			Conflicts: conflicts,
		})
	}

	return result, nil
}

// ForRoom reports whether a single room is free for the requested range.
func (s *AvailabilityService) ForRoom(ctx context.Context, roomID uuid.UUID, stay domain.StayRange) (bool, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return false, err
	}

	if room.Occupied {
		return false, nil
	}

	bookings, err := s.bookingRepo.ListActiveByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}

	for _, b := range bookings {
		if stay.Overlaps(b.Stay) {
			return false, nil
		}
	}

	return true, nil
}

// ParseStay builds a validated range from ISO calendar dates.
func ParseStay(checkIn, checkOut string) (domain.StayRange, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return domain.StayRange{}, domain.ErrInvalidDateRange
	}

	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return domain.StayRange{}, domain.ErrInvalidDateRange
	}

	return domain.NewStayRange(in, out)
}
