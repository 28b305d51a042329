// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"ecomarket/internal/apperr"
	"ecomarket/internal/database"
	"ecomarket/internal/dto"
	"ecomarket/internal/handler"
	"ecomarket/internal/model"
	"ecomarket/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LoginHandler 使用 Username/Password 驗證，成功後發 session cookie 並導向選單
// @Summary     登入使用者
// @Description 使用 Username 與 Password 進行驗證，成功時設定 session cookie
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "使用者名稱"
// @Param       password formData string true "使用者密碼"
// @Success     303
// @Failure     400      {object} dto.HTTPError
// @Failure     401      {object} dto.HTTPError
// @Failure     500      {object} dto.HTTPError
// @Router      /login [post]
func LoginHandler(db database.DB, hasher service.PasswordHasher, sessions Sessions, audit Auditor, secureCookie bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadForm(c)
		}

		ctx := c.Request().Context()
		user, err := authenticateUser(ctx, db, hasher, req.Username, req.Password)
		if err != nil {
			audit.Record(model.AuthEvent{Kind: model.AuthEventLogin, Username: req.Username, Reason: apperr.MessageOf(err)})
			return handler.RespondError(c, err)
		}

		token, err := sessions.Issue(ctx, *user)
		if err != nil {
			return handler.RespondError(c, errors.Wrap(err, "issue session"))
		}
		audit.Record(model.AuthEvent{Kind: model.AuthEventLogin, Username: user.Username, Success: true})

		c.SetCookie(sessionCookie(token, sessions.TTL(), secureCookie))
		return c.Redirect(http.StatusSeeOther, "/menu")
	}
}
