package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/c51838777-max/santakrit/internal/config"
	h "github.com/c51838777-max/santakrit/internal/http/handlers"
	"github.com/c51838777-max/santakrit/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Trips
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)

		// Route presets
		presets := api.Group("/route-presets")
		presets.GET("", h.GetRoutePresets)
		presets.DELETE("/:name", h.DeleteRoutePreset)

		// Summaries
		summary := api.Group("/summary")
		summary.GET("/month", h.GetMonthSummary)
		summary.GET("/period", h.GetPeriodSummary)
		summary.GET("/period/daily", h.GetDailyBreakdown)
		summary.GET("/period/drivers", h.GetDriverSummaries)
		summary.GET("/period/export", h.ExportPeriodCSV)

		// Drivers
		drivers := api.Group("/drivers")
		drivers.GET("/:name/stats", h.GetDriverStats)
		drivers.GET("/:name/trips", h.GetDriverTrips)

		// Salary slips: unlock is open, the slips themselves are gated.
		slips := api.Group("/slips")
		slips.POST("/unlock", h.UnlockSlips)
		gated := slips.Group("")
		gated.Use(middleware.SlipGate([]byte(env.JWTSecret)))
		gated.GET("/:driver", h.GetSlip)
		gated.GET("/:driver/pdf", h.GetSlipPDF)
	}

	return r
}
