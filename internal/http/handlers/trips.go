package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/c51838777-max/santakrit/internal/domain"
)

// GET /api/trips
func GetTrips(c *gin.Context) {
	c.JSON(http.StatusOK, tripService(c).List())
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var in domain.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}

	trip, err := tripService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	var in domain.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}

	trip, err := tripService(c).Update(id, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := tripID(c)
	if !ok {
		return
	}

	if err := tripService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func tripID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
