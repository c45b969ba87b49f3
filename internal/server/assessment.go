package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/assessment"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/dimensions"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/notify"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/peers"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/report"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/scoring"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/store"
)

// AssessmentHandler serves the assessment lifecycle endpoints.
type AssessmentHandler struct {
	registry *Registry
	leads    store.LeadRepo
	events   store.EventRepo
	insights *insight.Service
	mailer   *notify.Mailer
	branding report.Branding
	booking  string
	logger   *zap.Logger
}

// NewAssessmentHandler creates the assessment handler.
func NewAssessmentHandler(registry *Registry, leads store.LeadRepo, events store.EventRepo, insights *insight.Service, mailer *notify.Mailer, branding report.Branding, bookingURL string, logger *zap.Logger) *AssessmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentHandler{
		registry: registry,
		leads:    leads,
		events:   events,
		insights: insights,
		mailer:   mailer,
		branding: branding,
		booking:  bookingURL,
		logger:   logger,
	}
}

func (h *AssessmentHandler) session(w http.ResponseWriter, r *http.Request) *Session {
	id := mux.Vars(r)["id"]
	s := h.registry.Get(id)
	if s == nil {
		writeError(w, http.StatusNotFound, "unknown assessment session")
	}
	return s
}

// Create handles POST /v1/assessments.
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.registry.Create()
	s.Lock()
	progress := s.State.Progress()
	s.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id": s.ID,
		"progress":   progress,
	})
}

// Question handles GET /v1/assessments/{id}/question.
func (h *AssessmentHandler) Question(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	s.Lock()
	q, ok := s.State.CurrentQuestion()
	s.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Answer handles POST /v1/assessments/{id}/answers.
func (h *AssessmentHandler) Answer(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Answer) == "" {
		writeError(w, http.StatusBadRequest, "answer is required")
		return
	}

	s.Lock()
	q, _ := s.State.CurrentQuestion()
	err := s.State.Answer(req.Answer)
	progress := s.State.Progress()
	s.Unlock()

	if err != nil {
		if errors.Is(err, assessment.ErrAlreadyComplete) {
			writeError(w, http.StatusConflict, "assessment is already complete")
			return
		}
		writeError(w, http.StatusInternalServerError, "record answer")
		return
	}

	if h.events != nil {
		evErr := h.events.AppendAnswer(r.Context(), store.AnswerEventData{
			SessionID:  s.ID,
			QuestionID: q.ID,
			Category:   q.Category,
			AnswerText: req.Answer,
			Likert:     scoring.LikertValue(req.Answer),
		})
		if evErr != nil {
			h.logger.Warn("append answer event", zap.Error(evErr))
		}
	}

	writeJSON(w, http.StatusOK, progress)
}

// Progress handles GET /v1/assessments/{id}/progress.
func (h *AssessmentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	s.Lock()
	progress := s.State.Progress()
	s.Unlock()

	writeJSON(w, http.StatusOK, progress)
}

// Reset handles POST /v1/assessments/{id}/reset.
func (h *AssessmentHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	s.Lock()
	s.State.Reset()
	progress := s.State.Progress()
	s.Unlock()

	writeJSON(w, http.StatusOK, progress)
}

type resultsPayload struct {
	Score      scoring.Result         `json:"score"`
	Tier       scoring.Tier           `json:"tier"`
	Dimensions []dimensions.Dimension `json:"dimensions"`
	Peers      peers.Chart            `json:"peers"`
}

func (h *AssessmentHandler) results(s *Session) (resultsPayload, bool) {
	s.Lock()
	complete := s.State.Complete()
	data := s.State.Data()
	s.Unlock()

	if !complete {
		return resultsPayload{}, false
	}

	score := scoring.Score(data)
	return resultsPayload{
		Score:      score,
		Tier:       scoring.ClassifyTier(score.RawTotal),
		Dimensions: dimensions.Evaluate(data),
		Peers:      peers.Generate(score.Normalized, s.Seed()),
	}, true
}

// Results handles GET /v1/assessments/{id}/results.
func (h *AssessmentHandler) Results(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	payload, ok := h.results(s)
	if !ok {
		writeError(w, http.StatusConflict, "assessment is not complete")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Contact handles PUT /v1/assessments/{id}/contact.
func (h *AssessmentHandler) Contact(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	var req struct {
		Name             string `json:"name"`
		Email            string `json:"email"`
		Company          string `json:"company"`
		Role             string `json:"role"`
		MarketingConsent bool   `json:"marketing_consent"`
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
	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	err := h.leads.Upsert(r.Context(), store.LeadRecord{
		SessionID:        s.ID,
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.TrimSpace(req.Email),
		Company:          strings.TrimSpace(req.Company),
		Role:             strings.TrimSpace(req.Role),
		MarketingConsent: req.MarketingConsent,
	})
	if err != nil {
		h.logger.Error("upsert lead", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "save contact details")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AssessmentHandler) insightInput(ctx context.Context, s *Session, payload resultsPayload) insight.Input {
	s.Lock()
	responses := s.State.Data()
	s.Unlock()

	in := insight.Input{
		Responses:  responses,
		Score:      payload.Score,
		Tier:       payload.Tier,
		Dimensions: payload.Dimensions,
	}
	if lead, err := h.leads.BySession(ctx, s.ID); err == nil && lead != nil {
		in.Name = lead.Name
		in.Company = lead.Company
		in.Role = lead.Role
	}
	return in
}

// Insights handles POST /v1/assessments/{id}/insights.
func (h *AssessmentHandler) Insights(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	payload, ok := h.results(s)
	if !ok {
		writeError(w, http.StatusConflict, "assessment is not complete")
		return
	}

	out := h.insights.Insight(r.Context(), s.ID, h.insightInput(r.Context(), s, payload))
	writeJSON(w, http.StatusOK, out)
}

// Report handles GET /v1/assessments/{id}/report.
func (h *AssessmentHandler) Report(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	payload, ok := h.results(s)
	if !ok {
		writeError(w, http.StatusConflict, "assessment is not complete")
		return
	}

	in := h.insightInput(r.Context(), s, payload)
	data := report.Data{
		Name:        in.Name,
		Company:     in.Company,
		Score:       payload.Score,
		Tier:        payload.Tier,
		Dimensions:  payload.Dimensions,
		Insight:     h.insights.Insight(r.Context(), s.ID, in),
		GeneratedAt: time.Now(),
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, data, h.branding); err != nil {
		h.logger.Error("render report", zap.String("session", s.ID), zap.Error(err))
		writeError(w, http.StatusBadGateway, "report generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="leadership-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Email handles POST /v1/assessments/{id}/email.
func (h *AssessmentHandler) Email(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}

	payload, ok := h.results(s)
	if !ok {
		writeError(w, http.StatusConflict, "assessment is not complete")
		return
	}

	lead, err := h.leads.BySession(r.Context(), s.ID)
	if err != nil || lead == nil {
		writeError(w, http.StatusBadRequest, "contact details are required before emailing results")
		return
	}

	in := h.insightInput(r.Context(), s, payload)

	// Delivery happens off the request path. Failures are logged inside
	// the mailer and never reach the caller.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		h.mailer.SendSummary(ctx, notify.Summary{
			Product:    h.branding.Product,
			Name:       lead.Name,
			Email:      lead.Email,
			Score:      payload.Score,
			Tier:       payload.Tier,
			Dimensions: payload.Dimensions,
			Insight:    h.insights.Insight(ctx, s.ID, in),
			BookingURL: h.booking,
		})
	}()

	w.WriteHeader(http.StatusAccepted)
}
