package services

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/abcmobile/registration/internal/models"
	"github.com/abcmobile/registration/internal/repository"
)

// Error is the error class for registration service failures
var Error = errs.Class("registration service")

// ErrDuplicateUser is returned when the user id is already registered
var ErrDuplicateUser = errors.New("user is already registered")

// RegistrationRepository defines the interface for registration persistence
type RegistrationRepository interface {
	Create(reg *models.Registration) error
	GetByUserID(userID string) (*models.Registration, error)
	ExistsByUserID(userID string) (bool, error)
}

// RegistrationService handles registration business logic
type RegistrationService interface {
	Register(in models.RegistrationInput) (*models.Registration, error)
	GetByUserID(userID string) (*models.Registration, error)
}

// RegistrationServiceImpl implements RegistrationService
type RegistrationServiceImpl struct {
	repo       RegistrationRepository
	log        *zap.Logger
	bcryptCost int
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo RegistrationRepository, log *zap.Logger) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		repo:       repo,
		log:        log,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Register validates the input, hashes the password and stores the registration
func (s *RegistrationServiceImpl) Register(in models.RegistrationInput) (*models.Registration, error) {
	if err := in.Validate(); err != nil {
		return nil, Error.Wrap(err)
	}

	exists, err := s.repo.ExistsByUserID(in.UserID)
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("failed to check user: %w", err))
	}
	if exists {
		return nil, Error.Wrap(ErrDuplicateUser)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("failed to hash password: %w", err))
	}

	reg, err := models.NewRegistration(in, string(hash))
	if err != nil {
		return nil, Error.Wrap(err)
	}

	if err := s.repo.Create(reg); err != nil {
		// lost a race with a concurrent registration for the same user
		if errors.Is(err, repository.ErrDuplicateUserID) {
			return nil, Error.Wrap(ErrDuplicateUser)
		}
		return nil, Error.Wrap(fmt.Errorf("failed to create registration: %w", err))
	}

	s.log.Info("user registered", zap.String("id", reg.ID), zap.String("user_id", reg.UserID))
	return reg, nil
}

// GetByUserID retrieves a registration by its user id
func (s *RegistrationServiceImpl) GetByUserID(userID string) (*models.Registration, error) {
	reg, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("failed to get registration: %w", err))
	}
	return reg, nil
}

// CheckPassword reports whether password matches the stored hash
func CheckPassword(reg *models.Registration, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(reg.PasswordHash), []byte(password)) == nil
}
