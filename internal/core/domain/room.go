package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable unit of a place. Occupied is a manual host override,
// independent of the booking ledger; effective availability for a range is
// NOT Occupied AND no overlapping active booking.
type Room struct {
	ID        uuid.UUID
	PlaceID   uuid.UUID
	Name      string
	Price     float64
	Occupied  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Place is a host's listing. DefaultPrice applies to rooms created without
// their own nightly price.
type Place struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	Title        string
	Category     string
	Latitude     float64
	Longitude    float64
	DefaultPrice float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PaymentInfo holds a place's bank/QR receiving details shown to guests on
// the transfer-slip path.
type PaymentInfo struct {
	PlaceID       uuid.UUID
	BankName      string
	AccountName   string
	AccountNumber string
	QRCodeURL     string
	UpdatedAt     time.Time
}
