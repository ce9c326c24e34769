package database

import (
	"database/sql"
	"fmt"
)

const createExtensionSQL = `
CREATE EXTENSION IF NOT EXISTS btree_gist;`

const createPlacesTableSQL = `
CREATE TABLE IF NOT EXISTS places (
    id UUID PRIMARY KEY,
    host_id UUID NOT NULL,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    default_price NUMERIC(12,2) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);`

const createRoomsTableSQL = `
CREATE TABLE IF NOT EXISTS rooms (
    id UUID PRIMARY KEY,
    place_id UUID NOT NULL REFERENCES places(id),
    name TEXT NOT NULL,
    price NUMERIC(12,2) NOT NULL,
    occupied BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);`

// The exclusion constraint is the datastore-level backstop against double
// booking: no two pending/confirmed rows may hold overlapping half-open
// ranges on the same room, regardless of what the application checked.
const createBookingsTableSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    id UUID PRIMARY KEY,
    room_id UUID NOT NULL REFERENCES rooms(id) ON DELETE RESTRICT,
    place_id UUID NOT NULL REFERENCES places(id),
    guest_id UUID NOT NULL,
    check_in DATE NOT NULL,
    check_out DATE NOT NULL,
    total_price NUMERIC(12,2) NOT NULL,
    status TEXT NOT NULL,
    payment_status TEXT NOT NULL,
    payment_slip TEXT,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    CHECK (check_in < check_out),
    CONSTRAINT bookings_no_overlap EXCLUDE USING gist (
        room_id WITH =,
        daterange(check_in, check_out) WITH &&
    ) WHERE (status IN ('pending', 'confirmed'))
);`

const createBookingIndexesSQL = `
CREATE INDEX IF NOT EXISTS idx_bookings_room_id ON bookings (room_id);
CREATE INDEX IF NOT EXISTS idx_bookings_place_id ON bookings (place_id);
CREATE INDEX IF NOT EXISTS idx_bookings_guest_id ON bookings (guest_id);`

const createPaymentInfoTableSQL = `
CREATE TABLE IF NOT EXISTS payment_info (
    place_id UUID PRIMARY KEY REFERENCES places(id),
    bank_name TEXT NOT NULL,
    account_name TEXT NOT NULL,
    account_number TEXT NOT NULL,
    qr_code_url TEXT,
    updated_at TIMESTAMPTZ NOT NULL
);`

// RunMigrations creates the schema if it does not exist yet.
func RunMigrations(db *sql.DB) error {
	stmts := []string{
		createExtensionSQL,
		createPlacesTableSQL,
		createRoomsTableSQL,
		createBookingsTableSQL,
		createBookingIndexesSQL,
		createPaymentInfoTableSQL,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}

	return nil
}
