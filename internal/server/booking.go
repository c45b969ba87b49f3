package server

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/store"
)

// BookingHandler serves strategy-call booking requests.
type BookingHandler struct {
	bookings store.BookingRepo
	logger   *zap.Logger
}

// NewBookingHandler creates the booking handler.
func NewBookingHandler(bookings store.BookingRepo, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{bookings: bookings, logger: logger}
}

// Create handles POST /v1/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID     string `json:"session_id"`
		Name          string `json:"name"`
		Email         string `json:"email"`
		Company       string `json:"company"`
		PreferredSlot string `json:"preferred_slot"`
		Notes         string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fields["email"] = "a valid email address is required"
	}
	if strings.TrimSpace(req.PreferredSlot) == "" {
		fields["preferred_slot"] = "a preferred slot is required"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	err := h.bookings.Save(r.Context(), store.BookingRecord{
		SessionID:     req.SessionID,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Company:       strings.TrimSpace(req.Company),
		PreferredSlot: strings.TrimSpace(req.PreferredSlot),
		Notes:         strings.TrimSpace(req.Notes),
	})
	if err != nil {
		h.logger.Error("save booking", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "save booking request")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "received"})
}
