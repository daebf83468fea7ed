package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	contactRepo "hourlyride/database/repository/contact"
	"hourlyride/models"
)

// ContactHandler exposes contact form endpoints.
type ContactHandler struct {
	Repo   contactRepo.ContactRepository
	Logger *zap.Logger
}

func NewContactHandler(repo contactRepo.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Repo: repo, Logger: logger}
}

// CreateContact handles POST /api/contact.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact payload", "details": err.Error()})
		return
	}

	submission := &models.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), submission); err != nil {
		h.Logger.Error("contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store contact submission"})
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// ListContacts handles GET /api/contact, newest submissions first.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	submissions, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("contact list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contact submissions"})
		return
	}
	if submissions == nil {
		submissions = []models.ContactSubmission{}
	}
	c.JSON(http.StatusOK, submissions)
}
