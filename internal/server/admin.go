package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/store"
)

const adminListLimit = 200

// AdminHandler serves the authenticated admin surface.
type AdminHandler struct {
	auth     *Auth
	leads    store.LeadRepo
	bookings store.BookingRepo
	events   store.EventRepo
	logger   *zap.Logger
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(auth *Auth, leads store.LeadRepo, bookings store.BookingRepo, events store.EventRepo, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{auth: auth, leads: leads, bookings: bookings, events: events, logger: logger}
}

// Login handles POST /v1/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	jwt, err := h.auth.Login(req.Token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid admin token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": jwt})
}

// Leads handles GET /v1/admin/leads.
func (h *AdminHandler) Leads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leads.List(r.Context(), adminListLimit)
	if err != nil {
		h.logger.Error("list leads", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list leads")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leads": leads})
}

// Bookings handles GET /v1/admin/bookings.
func (h *AdminHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context(), adminListLimit)
	if err != nil {
		h.logger.Error("list bookings", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list bookings")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

// Stats handles GET /v1/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.events.Stats(r.Context())
	if err != nil {
		h.logger.Error("load stats", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
