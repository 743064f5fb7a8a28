package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handlePing is a health check endpoint that returns a simple pong message
func (a *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
