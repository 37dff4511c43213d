package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClubHandler handles HTTP requests for club operations
type ClubHandler struct {
	clubService   service.ClubServiceInterface
	rosterService service.RosterServiceInterface
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService service.ClubServiceInterface, rosterService service.RosterServiceInterface) *ClubHandler {
	return &ClubHandler{
		clubService:   clubService,
		rosterService: rosterService,
	}
}

// ListClubs handles GET /api/v1/clubs
func (h *ClubHandler) ListClubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	var filter repository.ClubFilter
	if raw := c.Query("nationality_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nationality_id"})
			return
		}
		filter.NationalityID = &id
	}
	filter.LeagueName = c.Query("league")

	resp, err := h.clubService.List(filter, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clubs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetClub handles GET /api/v1/clubs/:id
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	club, err := h.clubService.Get(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrClubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get club", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, club)
}

// GetClubRoster handles GET /api/v1/clubs/:id/roster and returns every player
// currently registered at the club together with their resolved profiles and
// open contract periods.
func (h *ClubHandler) GetClubRoster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club ID"})
		return
	}

	roster, err := h.rosterService.GetClubRoster(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrClubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get club roster", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roster)
}
