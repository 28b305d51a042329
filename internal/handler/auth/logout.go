// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"

	"ecomarket/internal/logger"
	"ecomarket/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 撤銷 session 並清除 cookie
// @Summary     登出
// @Tags        auth
// @Success     303
// @Router      /logout [post]
func LogoutHandler(sessions Sessions, secureCookie bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			// 撤銷失敗仍清除 cookie，redis 端會自然過期
			if err := sessions.Revoke(c.Request().Context(), cookie.Value); err != nil {
				logger.FromContext(c).WithError(err).Warn("session revoke failed")
			}
		}
		c.SetCookie(clearedCookie(secureCookie))
		return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
	}
}
