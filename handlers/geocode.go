package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hourlyride/services/geocode"
)

// GeocodeHandler exposes address autocomplete suggestions.
type GeocodeHandler struct {
	Geocoder geocode.Geocoder
	Logger   *zap.Logger
}

func NewGeocodeHandler(geocoder geocode.Geocoder, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{Geocoder: geocoder, Logger: logger}
}

// Suggest handles GET /api/geocode/suggest?q=. An empty suggestion list is a
// valid response; the form then keeps the plain text input.
func (h *GeocodeHandler) Suggest(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	suggestions, err := h.Geocoder.Suggest(c.Request.Context(), query)
	if err != nil {
		h.Logger.Error("geocode suggest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
