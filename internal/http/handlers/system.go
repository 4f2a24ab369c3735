package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/c51838777-max/santakrit/internal/config"
	"github.com/c51838777-max/santakrit/internal/store"
)

func Health(c *gin.Context) {
	mode := store.ModeUninitialized
	if adapter != nil {
		mode = adapter.Mode()
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"mode":   mode,
	})
}

func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unreachable: " + err.Error()})
		return
	}
	var count int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM trips").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed: " + err.Error()})
		return
	}
	remote := &store.RemoteStore{DB: config.DB}
	c.JSON(http.StatusOK, gin.H{
		"message":     "database connection OK",
		"trips_in_db": count,
		"schema":      remote.SchemaGeneration(),
	})
}
