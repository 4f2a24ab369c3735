package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/c51838777-max/santakrit/internal/http/middleware"
	"github.com/c51838777-max/santakrit/internal/services"
	"github.com/c51838777-max/santakrit/internal/utils"
)

type unlockRequest struct {
	Passphrase string `json:"passphrase"`
}

// POST /api/slips/unlock
func UnlockSlips(c *gin.Context) {
	var req unlockRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bcrypt.CompareHashAndPassword(passHash, []byte(req.Passphrase)); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "slips", "unlock", "rejected passphrase attempt")
		respondError(c, http.StatusUnauthorized, "unauthorized", "wrong passphrase")
		return
	}

	token, err := middleware.NewSlipToken([]byte(appEnv.JWTSecret), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "could not issue token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": 3600})
}

// GET /api/slips/:driver
func GetSlip(c *gin.Context) {
	slip, ok := buildSlip(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, slip)
}

// GET /api/slips/:driver/pdf
func GetSlipPDF(c *gin.Context) {
	slip, ok := buildSlip(c)
	if !ok {
		return
	}

	data, filename, err := services.BuildSlipPDF(slip)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not render slip", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func buildSlip(c *gin.Context) (services.SlipView, bool) {
	month, year, ok := periodParams(c)
	if !ok {
		return services.SlipView{}, false
	}
	driver := c.Param("driver")
	if driver == "" {
		RespondError(c, http.StatusBadRequest, "driver name required", nil)
		return services.SlipView{}, false
	}

	deductions := 0.0
	if raw := c.Query("deductions"); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d < 0 {
			RespondError(c, http.StatusBadRequest, "deductions must be a non-negative number", err)
			return services.SlipView{}, false
		}
		deductions = d
	}

	return payroll.Slip(driver, month, year, deductions), true
}
