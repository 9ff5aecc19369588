package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netrecon/passcheck"
)

type PasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// AnalyzePassword runs the password strength analysis for an API request.
// Stateless: nothing about the password is stored.
func AnalyzePassword(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, passcheck.Analyze(req.Password))
}
