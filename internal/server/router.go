package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all dependencies for the router.
type Container struct {
	Assessments *AssessmentHandler
	Bookings    *BookingHandler
	Admin       *AdminHandler
	Auth        *Auth
	CORSOrigins string
	Logger      *zap.Logger
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	if c.Logger != nil {
		r.Use(loggingMiddleware(c.Logger))
	}
	r.Use(corsMiddleware(c.CORSOrigins))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/assessments", c.Assessments.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/question", c.Assessments.Question).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/answers", c.Assessments.Answer).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/progress", c.Assessments.Progress).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/reset", c.Assessments.Reset).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/results", c.Assessments.Results).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/contact", c.Assessments.Contact).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/insights", c.Assessments.Insights).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/report", c.Assessments.Report).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessments/{id}/email", c.Assessments.Email).Methods("POST", "OPTIONS")

	v1.HandleFunc("/bookings", c.Bookings.Create).Methods("POST", "OPTIONS")

	v1.HandleFunc("/admin/login", c.Admin.Login).Methods("POST", "OPTIONS")

	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(c.Auth.RequireAdmin)
	adminRoutes.HandleFunc("/leads", c.Admin.Leads).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/bookings", c.Admin.Bookings).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/stats", c.Admin.Stats).Methods("GET", "OPTIONS")

	return r
}
