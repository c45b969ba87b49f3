package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	errInvalidCredentials = errors.New("invalid admin token")
	errInvalidToken       = errors.New("invalid or expired token")
)

// Auth issues and validates admin JWTs. The admin surface is a single
// shared credential exchanged for a short-lived bearer token.
type Auth struct {
	adminToken string
	jwtSecret  []byte
}

// NewAuth creates the admin authenticator. An empty adminToken disables
// admin login entirely.
func NewAuth(adminToken, jwtSecret string) *Auth {
	return &Auth{
		adminToken: adminToken,
		jwtSecret:  []byte(jwtSecret),
	}
}

// Login exchanges the shared admin token for a signed JWT.
func (a *Auth) Login(token string) (string, error) {
	if a.adminToken == "" || token != a.adminToken {
		return "", errInvalidCredentials
	}

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.jwtSecret)
}

// Validate checks an admin JWT.
func (a *Auth) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return errInvalidToken
	}
	return nil
}

// RequireAdmin validates the bearer token on admin routes.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}
		if err := a.Validate(token); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
