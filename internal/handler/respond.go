// File: internal/handler/respond.go
package handler

import (
	"net/http"

	"ecomarket/internal/apperr"
	"ecomarket/internal/dto"
	"ecomarket/internal/logger"

	"github.com/labstack/echo/v4"
)

// RespondError 依錯誤類型回傳 {"message": ...}；5xx 只記 log，不外洩細節
func RespondError(c echo.Context, err error) error {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c).WithError(err).Error("request failed")
	}
	return c.JSON(status, dto.HTTPError{Message: apperr.MessageOf(err)})
}

// BadForm 表單無法綁定時使用
func BadForm(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid form data"})
}
