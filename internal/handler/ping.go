// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"ecomarket/internal/cache"
	"ecomarket/internal/database"
	"ecomarket/internal/dto"
	"ecomarket/internal/logger"

	"github.com/labstack/echo/v4"
)

const pingKey = "healthcheck:ping"

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.PingResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		if err := db.Ping(reqCtx); err != nil {
			logger.FromContext(ctx).WithError(err).Warn("database ping failed")
			return ctx.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		if err := c.Set(reqCtx, pingKey, "pong", 10*time.Second).Err(); err != nil {
			logger.FromContext(ctx).WithError(err).Warn("cache ping failed")
			return ctx.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache unhealthy"})
		}
		return ctx.JSON(http.StatusOK, dto.PingResponse{Message: "pong"})
	}
}
