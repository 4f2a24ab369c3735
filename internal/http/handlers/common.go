package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c51838777-max/santakrit/internal/config"
	"github.com/c51838777-max/santakrit/internal/http/middleware"
	"github.com/c51838777-max/santakrit/internal/services"
	"github.com/c51838777-max/santakrit/internal/store"
)

// Shared handler dependencies, wired once at startup.
var (
	adapter  *store.Adapter
	payroll  services.PayrollService
	appEnv   config.Env
	passHash []byte
)

// Configure injects the adapter and environment into the handler package.
func Configure(a *store.Adapter, env config.Env, slipPassHash []byte) {
	adapter = a
	payroll = services.PayrollService{Store: a}
	appEnv = env
	passHash = slipPassHash
}

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Store:     adapter,
		RequestID: middleware.GetRequestID(c),
	}
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
