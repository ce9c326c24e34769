package domain

import "time"

// StayRange is a half-open calendar interval [CheckIn, CheckOut): the checkout
// day is not occupied, so checkout and the next check-in may share a date.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStayRange normalizes both dates to UTC midnight and validates the order.
func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	r := StayRange{
		CheckIn:  toDay(checkIn),
		CheckOut: toDay(checkOut),
	}

	if !r.CheckIn.Before(r.CheckOut) {
		return StayRange{}, ErrInvalidDateRange
	}

	return r, nil
}

// Overlaps reports whether two half-open ranges share at least one night.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Nights is the number of nights covered by the range. A valid range always
// spans at least one night.
func (r StayRange) Nights() int {
	d := r.CheckOut.Sub(r.CheckIn)

	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}

	return nights
}

func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
