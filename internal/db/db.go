// internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// Open connects to the audit database from DB_* environment variables.
// Returns (nil, nil) when DB_HOST is unset: the audit trail is optional and
// its absence is not an error.
func Open() (*sql.DB, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return nil, nil
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name,
	)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("ping audit db: %w", err)
	}
	return conn, nil
}
