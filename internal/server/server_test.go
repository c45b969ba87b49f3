package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/insight"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/llm"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/notify"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/report"
	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/store"
)

// In-memory repo fakes.

type fakeLeads struct {
	records map[string]store.LeadRecord
}

func newFakeLeads() *fakeLeads {
	return &fakeLeads{records: make(map[string]store.LeadRecord)}
}

func (f *fakeLeads) Upsert(_ context.Context, rec store.LeadRecord) error {
	f.records[rec.SessionID] = rec
	return nil
}

func (f *fakeLeads) BySession(_ context.Context, sessionID string) (*store.LeadRecord, error) {
	rec, ok := f.records[sessionID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeLeads) List(context.Context, int) ([]store.LeadRecord, error) {
	out := make([]store.LeadRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

type fakeBookings struct {
	records []store.BookingRecord
}

func (f *fakeBookings) Save(_ context.Context, rec store.BookingRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeBookings) List(context.Context, int) ([]store.BookingRecord, error) {
	return f.records, nil
}

type fakeEvents struct {
	answers int
}

func (f *fakeEvents) AppendAnswer(context.Context, store.AnswerEventData) error {
	f.answers++
	return nil
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEvents) Stats(context.Context) (store.Stats, error) {
	return store.Stats{Answers: f.answers}, nil
}

type fakeSnapshots struct {
	data map[string]json.RawMessage
}

func (f *fakeSnapshots) SaveIfAbsent(_ context.Context, sessionID, insightType string, payload json.RawMessage) (bool, error) {
	key := sessionID + "/" + insightType
	if _, ok := f.data[key]; ok {
		return false, nil
	}
	f.data[key] = payload
	return true, nil
}

func (f *fakeSnapshots) Get(_ context.Context, sessionID, insightType string) (json.RawMessage, error) {
	return f.data[sessionID+"/"+insightType], nil
}

type env struct {
	router   http.Handler
	registry *Registry
	leads    *fakeLeads
	bookings *fakeBookings
	events   *fakeEvents
}

func newTestEnv(t *testing.T) *env {
	t.Helper()

	registry := NewRegistry(0)
	leads := newFakeLeads()
	bookings := &fakeBookings{}
	events := &fakeEvents{}
	snaps := &fakeSnapshots{data: make(map[string]json.RawMessage)}

	// The provider queue is empty, so generation always falls back to the
	// canned insight. Deterministic and offline.
	provider := llm.NewMockProvider()
	insights := insight.NewService(provider, snaps, nil, insight.DefaultConfig())

	mailer := notify.NewMailer(notify.SMTPConfig{}, nil)
	auth := NewAuth("letmein", "test-secret")

	router := NewRouter(&Container{
		Assessments: NewAssessmentHandler(registry, leads, events, insights, mailer, report.DefaultBranding(), "", nil),
		Bookings:    NewBookingHandler(bookings, nil),
		Admin:       NewAdminHandler(auth, leads, bookings, events, nil),
		Auth:        auth,
		CORSOrigins: "*",
	})

	return &env{router: router, registry: registry, leads: leads, bookings: bookings, events: events}
}

func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *env) createSession(t *testing.T) string {
	t.Helper()
	rec := e.do(t, "POST", "/v1/assessments", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status %d", rec.Code)
	}
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.SessionID
}

func (e *env) completeAssessment(t *testing.T, id string) {
	t.Helper()
	for i := 0; i < catalog.Total(); i++ {
		rec := e.do(t, "POST", "/v1/assessments/"+id+"/answers", map[string]string{"answer": "4 - Regularly"})
		if rec.Code != http.StatusOK {
			t.Fatalf("answer %d: status %d: %s", i+1, rec.Code, rec.Body.String())
		}
	}
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t)
	rec := e.do(t, "GET", "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestCreateAndQuestion(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)

	rec := e.do(t, "GET", "/v1/assessments/"+id+"/question", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var q catalog.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	if q.ID != 1 {
		t.Errorf("question id = %d, want 1", q.ID)
	}
}

func TestUnknownSession(t *testing.T) {
	e := newTestEnv(t)
	rec := e.do(t, "GET", "/v1/assessments/no-such-id/question", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAnswerFlowToCompletion(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)

	// No more questions.
	rec := e.do(t, "GET", "/v1/assessments/"+id+"/question", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("question after completion: status = %d, want 204", rec.Code)
	}

	// Extra answers are rejected.
	rec = e.do(t, "POST", "/v1/assessments/"+id+"/answers", map[string]string{"answer": "5 - Daily"})
	if rec.Code != http.StatusConflict {
		t.Errorf("answer after completion: status = %d, want 409", rec.Code)
	}

	if e.events.answers != catalog.Total() {
		t.Errorf("answer events = %d, want %d", e.events.answers, catalog.Total())
	}
}

func TestAnswerValidation(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)

	rec := e.do(t, "POST", "/v1/assessments/"+id+"/answers", map[string]string{"answer": "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank answer: status = %d, want 400", rec.Code)
	}
}

func TestResultsRequireCompletion(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)

	rec := e.do(t, "GET", "/v1/assessments/"+id+"/results", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestResults(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)

	rec := e.do(t, "GET", "/v1/assessments/"+id+"/results", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var payload resultsPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	// Six scoring categories all answered 4 gives rawTotal 24.
	if payload.Score.RawTotal != 24 {
		t.Errorf("raw total = %d, want 24", payload.Score.RawTotal)
	}
	if payload.Tier.Label != "Strategic Adopter" {
		t.Errorf("tier = %q, want 'Strategic Adopter'", payload.Tier.Label)
	}
	if len(payload.Dimensions) != 6 {
		t.Errorf("dimensions = %d, want 6", len(payload.Dimensions))
	}
	if payload.Peers.Percentile < 85 {
		t.Errorf("percentile = %d, want >= 85", payload.Peers.Percentile)
	}
}

func TestReset(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)

	rec := e.do(t, "POST", "/v1/assessments/"+id+"/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("reset: status = %d", rec.Code)
	}

	rec = e.do(t, "GET", "/v1/assessments/"+id+"/question", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("question after reset: status = %d, want 200", rec.Code)
	}
}

func TestContactValidation(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)

	rec := e.do(t, "PUT", "/v1/assessments/"+id+"/contact", map[string]string{
		"name":  "",
		"email": "not-an-email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.Fields["name"]; !ok {
		t.Error("expected a name field error")
	}
	if _, ok := resp.Fields["email"]; !ok {
		t.Error("expected an email field error")
	}
}

func TestContactUpsert(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)

	rec := e.do(t, "PUT", "/v1/assessments/"+id+"/contact", map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"company": "Analytical Engines",
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", rec.Code, rec.Body.String())
	}
	if _, ok := e.leads.records[id]; !ok {
		t.Error("expected lead to be persisted")
	}
}

func TestInsightsEndpoint(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)

	rec := e.do(t, "POST", "/v1/assessments/"+id+"/insights", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out insight.Insight
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode insight: %v", err)
	}
	if len(out.Roadmap) != 3 {
		t.Errorf("roadmap = %d items, want 3", len(out.Roadmap))
	}
	if out.LeadershipStage == "" {
		t.Error("expected a leadership stage")
	}
}

func TestReportEndpoint(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)

	rec := e.do(t, "GET", "/v1/assessments/"+id+"/report", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestEmailRequiresContact(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)

	rec := e.do(t, "POST", "/v1/assessments/"+id+"/email", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEmailAccepted(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)
	e.do(t, "PUT", "/v1/assessments/"+id+"/contact", map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	})

	rec := e.do(t, "POST", "/v1/assessments/"+id+"/email", nil)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", rec.Code, rec.Body.String())
	}
}

func TestBookingValidation(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, "POST", "/v1/bookings", map[string]string{"name": "", "email": "bad"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBookingCreated(t *testing.T) {
	e := newTestEnv(t)

	rec := e.do(t, "POST", "/v1/bookings", map[string]string{
		"name":           "Ada",
		"email":          "ada@example.com",
		"preferred_slot": "Tue 10:00",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	if len(e.bookings.records) != 1 {
		t.Errorf("bookings = %d, want 1", len(e.bookings.records))
	}
}

func TestAdminAuth(t *testing.T) {
	e := newTestEnv(t)

	// Wrong shared token.
	rec := e.do(t, "POST", "/v1/admin/login", map[string]string{"token": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: status = %d, want 401", rec.Code)
	}

	// No bearer token.
	rec = e.do(t, "GET", "/v1/admin/leads", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated leads: status = %d, want 401", rec.Code)
	}

	// Correct login.
	rec = e.do(t, "POST", "/v1/admin/login", map[string]string{"token": "letmein"})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d", rec.Code)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if login.Token == "" {
		t.Fatal("expected a JWT")
	}

	// Authenticated admin routes.
	for _, path := range []string{"/v1/admin/leads", "/v1/admin/bookings", "/v1/admin/stats"} {
		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		w := httptest.NewRecorder()
		e.router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, w.Code)
		}
	}
}

func TestProgressEndpoint(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)

	e.do(t, "POST", "/v1/assessments/"+id+"/answers", map[string]string{"answer": "3 - Sometimes"})

	rec := e.do(t, "GET", "/v1/assessments/"+id+"/progress", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var progress struct {
		CurrentQuestion  int     `json:"current_question"`
		CompletedAnswers int     `json:"completed_answers"`
		Percentage       float64 `json:"progress_percentage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &progress); err != nil {
		t.Fatalf("decode progress: %v", err)
	}
	if progress.CompletedAnswers != 1 {
		t.Errorf("completed = %d, want 1", progress.CompletedAnswers)
	}
	if progress.CurrentQuestion != 2 {
		t.Errorf("current question = %d, want 2", progress.CurrentQuestion)
	}
}

func TestInsightCachedPerSession(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)
	e.completeAssessment(t, id)

	first := e.do(t, "POST", "/v1/assessments/"+id+"/insights", nil)
	second := e.do(t, "POST", "/v1/assessments/"+id+"/insights", nil)
	if first.Body.String() != second.Body.String() {
		t.Error("expected identical insight on repeated calls")
	}
}

func TestAnswerTextsVaryScore(t *testing.T) {
	e := newTestEnv(t)
	id := e.createSession(t)

	for i := 0; i < catalog.Total(); i++ {
		answer := fmt.Sprintf("%d - option", (i%5)+1)
		rec := e.do(t, "POST", "/v1/assessments/"+id+"/answers", map[string]string{"answer": answer})
		if rec.Code != http.StatusOK {
			t.Fatalf("answer %d: status %d", i+1, rec.Code)
		}
	}

	rec := e.do(t, "GET", "/v1/assessments/"+id+"/results", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("results: status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "raw_total") {
		t.Error("expected raw_total in results payload")
	}
}
