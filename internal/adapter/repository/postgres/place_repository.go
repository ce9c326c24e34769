package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jakkritp/staybooking/internal/core/domain"
)

type PlaceRepository struct {
	db *sql.DB
}

func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO places (id, host_id, title, category, latitude, longitude, default_price, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, place.ID, place.HostID, place.Title, place.Category,
		place.Latitude, place.Longitude, place.DefaultPrice,
		place.CreatedAt, place.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert place: %w", err)
	}

	return nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	var place domain.Place

	err := r.db.QueryRowContext(ctx, `
	SELECT id, host_id, title, category, latitude, longitude, default_price, created_at, updated_at
	FROM places WHERE id = $1
	`, placeID).Scan(&place.ID, &place.HostID, &place.Title, &place.Category,
		&place.Latitude, &place.Longitude, &place.DefaultPrice,
		&place.CreatedAt, &place.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, err
	}

	return &place, nil
}

func (r *PlaceRepository) UpsertPaymentInfo(ctx context.Context, info *domain.PaymentInfo) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO payment_info (place_id, bank_name, account_name, account_number, qr_code_url, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (place_id) DO UPDATE
	SET bank_name = EXCLUDED.bank_name,
	    account_name = EXCLUDED.account_name,
	    account_number = EXCLUDED.account_number,
	    qr_code_url = EXCLUDED.qr_code_url,
	    updated_at = EXCLUDED.updated_at
	`, info.PlaceID, info.BankName, info.AccountName, info.AccountNumber,
		info.QRCodeURL, info.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert payment info: %w", err)
	}

	return nil
}

func (r *PlaceRepository) GetPaymentInfo(ctx context.Context, placeID uuid.UUID) (*domain.PaymentInfo, error) {
	var info domain.PaymentInfo
	var qr sql.NullString

	err := r.db.QueryRowContext(ctx, `
	SELECT place_id, bank_name, account_name, account_number, qr_code_url, updated_at
	FROM payment_info WHERE place_id = $1
	`, placeID).Scan(&info.PlaceID, &info.BankName, &info.AccountName,
		&info.AccountNumber, &qr, &info.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, err
	}

	if qr.Valid {
		info.QRCodeURL = qr.String
	}

	return &info, nil
}
