package domain_test

import (
	"testing"
	"time"

	"github.com/jakkritp/staybooking/internal/core/domain"
	"github.com/stretchr/testify/assert"
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

func TestNewStayRange_RejectsInvertedAndEmpty(t *testing.T) {
	_, err := domain.NewStayRange(date(2025, 8, 3), date(2025, 8, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = domain.NewStayRange(date(2025, 8, 1), date(2025, 8, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestNewStayRange_NormalizesTimeOfDay(t *testing.T) {
	stay, err := domain.NewStayRange(
		time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC),
		time.Date(2025, 8, 3, 11, 0, 0, 0, time.UTC),
	)

	assert.NoError(t, err)
	assert.Equal(t, date(2025, 8, 1), stay.CheckIn)
	assert.Equal(t, date(2025, 8, 3), stay.CheckOut)
	assert.Equal(t, 2, stay.Nights())
}

func TestOverlaps(t *testing.T) {
	base := mustStay(t, date(2025, 8, 1), date(2025, 8, 3))

	assert.True(t, base.Overlaps(mustStay(t, date(2025, 8, 2), date(2025, 8, 4))))
	assert.True(t, base.Overlaps(mustStay(t, date(2025, 7, 30), date(2025, 8, 2))))
	assert.True(t, base.Overlaps(mustStay(t, date(2025, 7, 30), date(2025, 8, 10))))
	assert.True(t, base.Overlaps(base))

	assert.False(t, base.Overlaps(mustStay(t, date(2025, 8, 5), date(2025, 8, 7))))
}

func TestOverlaps_CheckoutDayIsFree(t *testing.T) {
	jan1to3 := mustStay(t, date(2025, 1, 1), date(2025, 1, 3))
	jan3to5 := mustStay(t, date(2025, 1, 3), date(2025, 1, 5))

	assert.False(t, jan1to3.Overlaps(jan3to5))
	assert.False(t, jan3to5.Overlaps(jan1to3))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, mustStay(t, date(2025, 8, 1), date(2025, 8, 2)).Nights())
	assert.Equal(t, 2, mustStay(t, date(2025, 8, 1), date(2025, 8, 3)).Nights())
	assert.Equal(t, 31, mustStay(t, date(2025, 8, 1), date(2025, 9, 1)).Nights())
}
