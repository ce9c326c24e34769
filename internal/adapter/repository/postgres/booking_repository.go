package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/jakkritp/staybooking/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, room_id, place_id, guest_id, check_in, check_out, total_price, status, payment_status, payment_slip, created_at, updated_at`

// Create admits a booking. The transaction locks the room row, re-checks the
// occupied flag and the overlap predicate, and only then inserts. The gist
// exclusion constraint on (room_id, daterange) rejects anything that still
// slips through, so exactly one of two racing admissions can commit.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var occupied bool
	err = tx.QueryRowContext(ctx,
		`SELECT occupied FROM rooms WHERE id = $1 FOR UPDATE`,
		booking.RoomID,
	).Scan(&occupied)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room row: %w", err)
	}

	if occupied {
		return domain.ErrRoomUnavailable
	}

	var conflicts int
	err = tx.QueryRowContext(ctx, `
	SELECT COUNT(1) FROM bookings
	WHERE room_id = $1
	  AND status IN ('pending', 'confirmed')
	  AND check_in < $3 AND check_out > $2
	`, booking.RoomID, booking.Stay.CheckIn, booking.Stay.CheckOut).Scan(&conflicts)

	if err != nil {
		return fmt.Errorf("recheck availability: %w", err)
	}

	if conflicts > 0 {
		return domain.ErrBookingConflict
	}

	_, err = tx.ExecContext(ctx, `
	INSERT INTO bookings (`+bookingColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		booking.ID, booking.RoomID, booking.PlaceID, booking.GuestID,
		booking.Stay.CheckIn, booking.Stay.CheckOut, booking.TotalPrice,
		booking.Status, booking.PaymentStatus, nullString(booking.PaymentSlip),
		booking.CreatedAt, booking.UpdatedAt,
	)

	if err != nil {
		if isAdmissionConflict(err) {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isAdmissionConflict(err) {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("commit booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID)

	booking, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE guest_id = $1 ORDER BY created_at DESC`,
		guestID)
}

func (r *BookingRepository) ListActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]domain.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE room_id = $1 AND status IN ('pending', 'confirmed')
		 ORDER BY check_in`,
		roomID)
}

func (r *BookingRepository) ListActiveByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Booking, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE place_id = $1 AND status IN ('pending', 'confirmed')
		 ORDER BY check_in`,
		placeID)
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	result, err := r.db.ExecContext(ctx, `
	UPDATE bookings
	SET status = $1, payment_status = $2, payment_slip = $3, updated_at = $4
	WHERE id = $5
	`, booking.Status, booking.PaymentStatus, nullString(booking.PaymentSlip),
		booking.UpdatedAt, booking.ID)

	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) list(ctx context.Context, query string, arg any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}

	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var slip sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.PlaceID,
		&booking.GuestID,
		&booking.Stay.CheckIn,
		&booking.Stay.CheckOut,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentStatus,
		&slip,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	if slip.Valid {
		booking.PaymentSlip = slip.String
	}

	return &booking, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isAdmissionConflict recognizes the constraint and isolation failures that
// mean "another booking got there first": exclusion violation, serialization
// failure and unique violation.
func isAdmissionConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch pqErr.Code {
	case "23P01", "40001", "23505":
		return true
	}

	return false
}
