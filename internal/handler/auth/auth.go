// File: internal/handler/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"time"

	"ecomarket/internal/middleware"
	"ecomarket/internal/model"
	"ecomarket/internal/service"
)

var (
	registerUser     = service.RegisterUser
	authenticateUser = service.AuthenticateUser
)

// Sessions 由 service.SessionManager 實作
type Sessions interface {
	Issue(ctx context.Context, user model.User) (string, error)
	Revoke(ctx context.Context, token string) error
	TTL() time.Duration
}

// Auditor 由 service.AuditRecorder 實作
type Auditor interface {
	Record(ev model.AuthEvent)
}

func sessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func clearedCookie(secure bool) *http.Cookie {
	c := sessionCookie("", 0, secure)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	return c
}
