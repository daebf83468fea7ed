package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hourlyride/models"
	"hourlyride/services/chat"
)

// ChatMessage handles POST /api/chat with a canned, keyword-matched reply.
func ChatMessage(c *gin.Context) {
	var input models.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chat payload", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chat.Respond(input.Message))
}
