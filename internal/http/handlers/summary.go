package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/c51838777-max/santakrit/internal/domain"
)

// periodParams reads ?month=&year= with the current pay period as default.
// Month is 1-12.
func periodParams(c *gin.Context) (time.Month, int, bool) {
	month, year := domain.CurrentPeriod()

	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			RespondError(c, http.StatusBadRequest, "month must be 1-12", err)
			return 0, 0, false
		}
		month = time.Month(m)
	}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2200 {
			RespondError(c, http.StatusBadRequest, "invalid year", err)
			return 0, 0, false
		}
		year = y
	}
	return month, year, true
}

// GET /api/summary/month
func GetMonthSummary(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month": int(month),
		"year":  year,
		"stats": payroll.MonthSummary(month, year),
	})
}

// GET /api/summary/period
func GetPeriodSummary(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}
	start, end := domain.PeriodBounds(month, year)
	c.JSON(http.StatusOK, gin.H{
		"period": domain.PeriodLabel(month, year),
		"start":  start.Format("2006-01-02"),
		"end":    end.Format("2006-01-02"),
		"stats":  payroll.PeriodSummary(month, year),
	})
}

// GET /api/summary/period/daily
func GetDailyBreakdown(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"period": domain.PeriodLabel(month, year),
		"days":   payroll.DailyBreakdown(month, year),
	})
}

// GET /api/summary/period/drivers
func GetDriverSummaries(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"period":  domain.PeriodLabel(month, year),
		"drivers": payroll.DriverSummaries(month, year),
	})
}

// GET /api/summary/period/export
func ExportPeriodCSV(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("period_%s.csv", domain.PeriodLabel(month, year))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := payroll.ExportPeriodCSV(c.Writer, month, year); err != nil {
		RespondError(c, http.StatusInternalServerError, "export failed", err)
	}
}

// GET /api/drivers/:name/stats
func GetDriverStats(c *gin.Context) {
	month, year, ok := periodParams(c)
	if !ok {
		return
	}
	name := c.Param("name")
	if name == "" {
		RespondError(c, http.StatusBadRequest, "driver name required", nil)
		return
	}
	c.JSON(http.StatusOK, payroll.StatsFor(name, month, year))
}

// GET /api/drivers/:name/trips
func GetDriverTrips(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		RespondError(c, http.StatusBadRequest, "driver name required", nil)
		return
	}
	c.JSON(http.StatusOK, payroll.TripsFor(name))
}
