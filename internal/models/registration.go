package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RegistrationInput is the record a new user submits through the
// registration form. Every field is required; no format rules apply.
type RegistrationInput struct {
	LastName  string `json:"lastName"`
	CellPhone string `json:"cellPhone"`
	UserID    string `json:"userId"`
	Password  string `json:"password"`
}

// Registration is a persisted user registration
type Registration struct {
	ID           string
	LastName     string
	CellPhone    string
	UserID       string
	PasswordHash string
	CreatedAt    time.Time
}

// Domain errors
var (
	ErrMissingLastName  = errors.New("last name is required")
	ErrMissingCellPhone = errors.New("cell phone number is required")
	ErrMissingUserID    = errors.New("user id is required")
	ErrMissingPassword  = errors.New("password is required")
)

// Validate reports the first missing field, in form order
func (in RegistrationInput) Validate() error {
	switch {
	case in.LastName == "":
		return ErrMissingLastName
	case in.CellPhone == "":
		return ErrMissingCellPhone
	case in.UserID == "":
		return ErrMissingUserID
	case in.Password == "":
		return ErrMissingPassword
	}
	return nil
}

// IsValidationError reports whether err is one of the missing-field errors
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingLastName) ||
		errors.Is(err, ErrMissingCellPhone) ||
		errors.Is(err, ErrMissingUserID) ||
		errors.Is(err, ErrMissingPassword)
}

// NewRegistration creates a new registration from validated input.
// The caller supplies the password hash; the plain password never
// leaves the input.
func NewRegistration(in RegistrationInput, passwordHash string) (*Registration, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errors.New("password hash cannot be empty")
	}

	return &Registration{
		ID:           uuid.New().String(),
		LastName:     in.LastName,
		CellPhone:    in.CellPhone,
		UserID:       in.UserID,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}, nil
}
