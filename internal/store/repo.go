package store

import (
	"context"
	"encoding/json"
	"time"
)

// SnapshotRepo manages cached narrative insights, keyed by
// (session_id, insight_type). First write wins; never refreshed.
type SnapshotRepo interface {
	// SaveIfAbsent stores payload for the key unless a snapshot already
	// exists. Returns true when the write happened.
	SaveIfAbsent(ctx context.Context, sessionID, insightType string, payload json.RawMessage) (bool, error)

	// Get returns the cached payload, or nil when no snapshot exists.
	Get(ctx context.Context, sessionID, insightType string) (json.RawMessage, error)
}

// LeadRecord is the contact capture for one session.
type LeadRecord struct {
	SessionID        string    `json:"session_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Company          string    `json:"company"`
	Role             string    `json:"role"`
	MarketingConsent bool      `json:"marketing_consent"`
	CreatedAt        time.Time `json:"created_at"`
}

// LeadRepo persists captured leads. One lead per session; re-submission
// updates the existing record.
type LeadRepo interface {
	Upsert(ctx context.Context, lead LeadRecord) error
	BySession(ctx context.Context, sessionID string) (*LeadRecord, error)
	List(ctx context.Context, limit int) ([]LeadRecord, error)
}

// BookingRecord is a strategy-call booking request.
type BookingRecord struct {
	SessionID     string    `json:"session_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company"`
	PreferredSlot string    `json:"preferred_slot"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

// BookingRepo persists booking requests.
type BookingRepo interface {
	Save(ctx context.Context, booking BookingRecord) error
	List(ctx context.Context, limit int) ([]BookingRecord, error)
}

// AnswerEventData captures one answered question for the audit trail.
type AnswerEventData struct {
	SessionID  string
	QuestionID int
	Category   string
	AnswerText string
	Likert     int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// Stats summarizes stored activity for the admin surface.
type Stats struct {
	Leads       int `json:"leads"`
	Bookings    int `json:"bookings"`
	Answers     int `json:"answers"`
	LLMRequests int `json:"llm_requests"`
}

// EventRepo provides append access to domain events and simple counts.
type EventRepo interface {
	// AppendAnswer records one answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Stats returns aggregate counts across the store.
	Stats(ctx context.Context) (Stats, error)
}
