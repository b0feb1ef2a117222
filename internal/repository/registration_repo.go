package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/zeebo/errs"

	"github.com/abcmobile/registration/internal/models"
)

// Error is the error class for registration persistence failures
var Error = errs.Class("registration repository")

var (
	// ErrNotFound is returned when no registration matches the lookup
	ErrNotFound = errors.New("registration not found")
	// ErrDuplicateUserID is returned when the user id is already registered
	ErrDuplicateUserID = errors.New("user id already registered")
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures
const uniqueViolation = "23505"

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *sql.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Create stores a new registration
func (r *RegistrationRepository) Create(reg *models.Registration) error {
	query := `
		INSERT INTO registrations (id, last_name, cell_phone, user_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		reg.ID,
		reg.LastName,
		reg.CellPhone,
		reg.UserID,
		reg.PasswordHash,
		reg.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return Error.Wrap(ErrDuplicateUserID)
		}
		return Error.Wrap(fmt.Errorf("failed to create registration: %w", err))
	}

	return nil
}

// GetByUserID retrieves a registration by its user id
func (r *RegistrationRepository) GetByUserID(userID string) (*models.Registration, error) {
	query := `
		SELECT id, last_name, cell_phone, user_id, password_hash, created_at
		FROM registrations
		WHERE user_id = $1
	`

	reg := &models.Registration{}
	err := r.db.QueryRow(query, userID).Scan(
		&reg.ID,
		&reg.LastName,
		&reg.CellPhone,
		&reg.UserID,
		&reg.PasswordHash,
		&reg.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, Error.Wrap(ErrNotFound)
	}
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("failed to get registration: %w", err))
	}

	return reg, nil
}

// ExistsByUserID reports whether a registration with the user id exists
func (r *RegistrationRepository) ExistsByUserID(userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM registrations WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, Error.Wrap(fmt.Errorf("failed to check registration: %w", err))
	}
	return exists, nil
}
