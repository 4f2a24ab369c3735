package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c51838777-max/santakrit/internal/domain"
	"github.com/c51838777-max/santakrit/internal/http/middleware"
)

func respondError(c *gin.Context, status int, code, message string) {
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. An exhausted
// shape fallback maps to 502 with a retry hint: the submission did not
// land and the driver has to send it again.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsUnavailable(err):
		respondError(c, http.StatusBadGateway, "store_rejected", err.Error()+"; please retry")
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
