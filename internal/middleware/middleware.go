package middleware

import (
	"context"
	stderrors "errors"
	"net/http"

	"ecomarket/internal/logger"
	"ecomarket/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "session"
	ContextSessionKey = "session"
	LoginPath         = "/login"
)

// SessionResolver 由 service.SessionManager 實作
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*service.SessionData, error)
}

// LoadSession 讀取 session cookie 並把結果放進 context；沒有或無效時不阻擋請求
func LoadSession(r SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			data, err := r.Resolve(c.Request().Context(), cookie.Value)
			switch {
			case err == nil:
				c.Set(ContextSessionKey, data)
			case stderrors.Is(err, service.ErrInvalidSession), stderrors.Is(err, service.ErrSessionNotFound):
			default:
				// redis 出錯時當作未登入
				logger.FromContext(c).WithError(err).Warn("session lookup failed")
			}
			return next(c)
		}
	}
}

// SessionFrom 取出 LoadSession 放入的 session
func SessionFrom(c echo.Context) (*service.SessionData, bool) {
	data, ok := c.Get(ContextSessionKey).(*service.SessionData)
	return data, ok && data != nil
}

// RequireSession 沒有 session 時導回登入頁
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := SessionFrom(c); !ok {
			return c.Redirect(http.StatusSeeOther, LoginPath)
		}
		return next(c)
	}
}
