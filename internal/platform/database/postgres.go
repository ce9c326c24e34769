package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jakkritp/staybooking/internal/platform/logger"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// NewPostgresDB connects with retries so the service survives the database
// coming up after it in compose environments.
func NewPostgresDB(cfg Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		logger.Log.Info("connecting to database", "attempt", i, "max", maxRetries)
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			logger.Log.Info("database connected")
			return db, nil
		}

		logger.Log.Warn("database not ready, retrying in 2s", "error", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("connect to database: %w", err)
}
