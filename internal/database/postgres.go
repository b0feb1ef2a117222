package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/abcmobile/registration/internal/config"
)

// Connect establishes a connection to the PostgreSQL database
func Connect(pgConfig *config.PostgresConfig, log *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", pgConfig.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("connected to database",
		zap.String("host", pgConfig.Host),
		zap.String("port", pgConfig.Port),
		zap.String("database", pgConfig.Database))
	return db, nil
}
