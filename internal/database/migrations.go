package database

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Schema creates the registrations table. User IDs are unique; a second
// registration for the same email is rejected by the database too.
const Schema = `
CREATE TABLE IF NOT EXISTS registrations (
	id UUID PRIMARY KEY,
	last_name VARCHAR(255) NOT NULL,
	cell_phone VARCHAR(64) NOT NULL,
	user_id VARCHAR(320) UNIQUE NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_registrations_created_at ON registrations(created_at);
`

// RunMigrations creates the necessary database tables
func RunMigrations(db *sql.DB, log *zap.Logger) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create registrations table: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}
