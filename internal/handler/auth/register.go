// File: internal/handler/auth/register.go
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
)

// RegisterHandler 建立新帳號後導回首頁
// @Summary     Register a new user
// @Description 驗證表單、檢查 username/email 是否重複，雜湊密碼後建立帳號
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       first_name formData string true "名字"
// @Param       last_name  formData string true "姓氏"
// @Param       username   formData string true "帳號"
// @Param       email      formData string true "Email"
// @Param       password   formData string true "密碼 (最多 72 bytes)"
// @Success     303
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /register [post]
func RegisterHandler(db database.DB, hasher service.PasswordHasher, audit Auditor) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadForm(c)
		}

		user, err := registerUser(c.Request().Context(), db, hasher, service.RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			audit.Record(model.AuthEvent{
				Kind:     model.AuthEventRegister,
				Username: req.Username,
				Reason:   apperr.MessageOf(err),
			})
			return handler.RespondError(c, err)
		}

		audit.Record(model.AuthEvent{Kind: model.AuthEventRegister, Username: user.Username, Success: true})
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
