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

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, place_id, name, price, occupied, created_at, updated_at`

func (r *RoomRepository) GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	var room domain.Room

	err := r.db.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, roomID,
	).Scan(&room.ID, &room.PlaceID, &room.Name, &room.Price, &room.Occupied,
		&room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}

	return &room, nil
}

func (r *RoomRepository) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE place_id = $1 ORDER BY created_at`, placeID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.PlaceID, &room.Name, &room.Price,
			&room.Occupied, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO rooms (`+roomColumns+`)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, room.ID, room.PlaceID, room.Name, room.Price, room.Occupied,
		room.CreatedAt, room.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

// Delete removes a room. The ON DELETE RESTRICT foreign key on bookings is
// the integrity guard: a room that bookings still reference cannot go away.
func (r *RoomRepository) Delete(ctx context.Context, roomID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, roomID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrRoomHasBookings
		}
		return fmt.Errorf("delete room: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

// SetOccupied updates the manual flag in a transaction that also clears the
// room's bookings when an occupied room is released. Re-flipping a free room
// or releasing a room with no bookings clears nothing and is not an error.
func (r *RoomRepository) SetOccupied(ctx context.Context, roomID uuid.UUID, occupied bool) (*domain.Room, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	defer tx.Rollback()

	var wasOccupied bool
	err = tx.QueryRowContext(ctx,
		`SELECT occupied FROM rooms WHERE id = $1 FOR UPDATE`, roomID,
	).Scan(&wasOccupied)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, domain.ErrRoomNotFound
		}
		return nil, 0, fmt.Errorf("lock room row: %w", err)
	}

	var room domain.Room
	err = tx.QueryRowContext(ctx, `
	UPDATE rooms SET occupied = $1, updated_at = NOW()
	WHERE id = $2
	RETURNING `+roomColumns+`
	`, occupied, roomID).Scan(&room.ID, &room.PlaceID, &room.Name, &room.Price,
		&room.Occupied, &room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		return nil, 0, fmt.Errorf("update room: %w", err)
	}

	var cleared int64
	if wasOccupied && !occupied {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM bookings WHERE room_id = $1`, roomID)
		if err != nil {
			return nil, 0, fmt.Errorf("clear room bookings: %w", err)
		}

		cleared, err = result.RowsAffected()
		if err != nil {
			return nil, 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	return &room, cleared, nil
}
