package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NationalityHandler handles HTTP requests for nationality lookups
type NationalityHandler struct {
	nationalityService service.NationalityServiceInterface
}

// NewNationalityHandler creates a new nationality handler
func NewNationalityHandler(nationalityService service.NationalityServiceInterface) *NationalityHandler {
	return &NationalityHandler{
		nationalityService: nationalityService,
	}
}

// ListNationalities handles GET /api/v1/nationalities
func (h *NationalityHandler) ListNationalities(c *gin.Context) {
	nationalities, err := h.nationalityService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list nationalities", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"nationalities": nationalities, "count": len(nationalities)})
}

// GetNationality handles GET /api/v1/nationalities/:id
func (h *NationalityHandler) GetNationality(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nationality ID"})
		return
	}

	nationality, err := h.nationalityService.Get(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNationalityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get nationality", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, nationality)
}
