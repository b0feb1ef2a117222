package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/abcmobile/registration/internal/models"
	"github.com/abcmobile/registration/internal/regform"
	"github.com/abcmobile/registration/internal/services"
)

const maxRequestBody = 64 << 10

// RegistrationAPIHandler handles registration submissions
type RegistrationAPIHandler struct {
	service services.RegistrationService
	log     *zap.Logger
}

// NewRegistrationAPIHandler creates a new registration API handler
func NewRegistrationAPIHandler(service services.RegistrationService, log *zap.Logger) *RegistrationAPIHandler {
	return &RegistrationAPIHandler{
		service: service,
		log:     log,
	}
}

// RegistrationResponse is sent to the client after a successful registration
type RegistrationResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ServeHTTP handles POST /api/registrations
func (h *RegistrationAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in models.RegistrationInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&in); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reg, err := h.service.Register(in)
	switch {
	case err == nil:
	case models.IsValidationError(err):
		sendErrorResponse(w, validationMessage(err), http.StatusBadRequest)
		return
	case errors.Is(err, services.ErrDuplicateUser):
		sendErrorResponse(w, "User ID is already registered", http.StatusConflict)
		return
	default:
		h.log.Error("registration failed", zap.String("user_id", in.UserID), zap.Error(err))
		sendErrorResponse(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(RegistrationResponse{
		ID:      reg.ID,
		UserID:  reg.UserID,
		Message: regform.SuccessMessage,
	}); err != nil {
		h.log.Warn("failed to encode response", zap.Error(err))
	}
}

// validationMessage returns the sentinel's text without the error class prefix
func validationMessage(err error) string {
	for _, sentinel := range []error{
		models.ErrMissingLastName,
		models.ErrMissingCellPhone,
		models.ErrMissingUserID,
		models.ErrMissingPassword,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
