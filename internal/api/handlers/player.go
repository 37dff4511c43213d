package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
	attrService   service.AttributeServiceInterface
	searchService service.SearchServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface, attrService service.AttributeServiceInterface, searchService service.SearchServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
		attrService:   attrService,
		searchService: searchService,
	}
}

// CreatePlayer handles POST /api/v1/players
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.playerService.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GetPlayer handles GET /api/v1/players/:id and returns the player's full
// profile with its role-matched attribute set.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	profile, err := h.attrService.Resolve(id)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAttributeMismatch):
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get player", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListPlayers handles GET /api/v1/players
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	resp, err := h.playerService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list players", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePlayer handles PATCH /api/v1/players/:id. Unknown JSON fields are
// rejected so a misspelled attribute name cannot silently no-op.
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	var req service.UpdatePlayerRequest
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.playerService.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRoleImmutable):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeletePlayer handles DELETE /api/v1/players/:id
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	if err := h.playerService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Player deleted successfully"})
}

// SearchPlayers handles GET /api/v1/players/search. Outfield players and
// goalkeepers are queried as independent categories, each with its own
// result cap; disable a category with include_outfield=false or
// include_goalkeepers=false.
func (h *PlayerHandler) SearchPlayers(c *gin.Context) {
	req := service.SearchRequest{
		NamePrefix:         c.Query("name"),
		IncludeOutfield:    c.DefaultQuery("include_outfield", "true") == "true",
		IncludeGoalkeepers: c.DefaultQuery("include_goalkeepers", "true") == "true",
	}

	if raw := c.Query("nationality_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nationality_id"})
			return
		}
		req.NationalityID = &id
	}

	if raw := c.Query("club_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club_id"})
			return
		}
		req.ClubID = &id
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		req.Limit = limit
	}

	results, err := h.searchService.Search(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search players", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": results, "count": len(results)})
}
