package domain

import "errors"

var (
	ErrPlaceNotFound   = errors.New("place not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidDateRange covers malformed or inverted check-in/check-out pairs.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrRoomUnavailable means the requested range is taken or the room is
	// manually marked occupied.
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")

	// ErrBookingConflict is returned when a concurrent admission won the race
	// for an overlapping range.
	ErrBookingConflict = errors.New("booking conflicts with an existing reservation")

	ErrInvalidTransition = errors.New("invalid booking state transition")

	// ErrRoomHasBookings rejects deleting a room that bookings still reference.
	ErrRoomHasBookings = errors.New("room still has bookings")
)
