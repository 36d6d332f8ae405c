// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"contacts-api/internal/api"
	"contacts-api/internal/cache"
	"contacts-api/internal/database"
	"contacts-api/internal/httperr"

	"github.com/labstack/echo/v4"
)

const (
	healthKey = "contacts-api:health"
	healthTTL = 10 * time.Second
)

// PingHandler checks the database and, when configured, the cache.
// @Summary     Health Check
// @Description Returns pong when the database (and cache, if configured) respond
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return httperr.New(http.StatusInternalServerError, "database unhealthy", err)
		}
		if cch != nil {
			if err := cch.Set(ctx, healthKey, time.Now().Unix(), healthTTL).Err(); err != nil {
				return httperr.New(http.StatusInternalServerError, "cache unhealthy", err)
			}
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
