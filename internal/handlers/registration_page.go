package handlers

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/abcmobile/registration/internal/regform"
)

// RegistrationPageHandler serves the registration form
type RegistrationPageHandler struct {
	render func(io.Writer, regform.PageData) error
	data   regform.PageData
	log    *zap.Logger
}

// NewRegistrationPageHandler creates a new RegistrationPageHandler
func NewRegistrationPageHandler(storeName string, log *zap.Logger) *RegistrationPageHandler {
	if storeName == "" {
		storeName = regform.DefaultStoreName
	}
	return &RegistrationPageHandler{
		render: regform.Render,
		data:   regform.PageData{StoreName: storeName},
		log:    log,
	}
}

// ServeHTTP handles GET requests for the registration page
func (h *RegistrationPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := h.render(&buf, h.data); err != nil {
		h.log.Error("failed to render registration page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
