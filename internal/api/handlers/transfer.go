package handlers

import (
	"net/http"

	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles HTTP requests for player transfers
type TransferHandler struct {
	transferService service.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService service.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// CreateTransfer handles POST /api/v1/transfers. The move is atomic: either
// the old contract closes, the new one opens, and the club assignment
// updates, or none of that happens.
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req service.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.transferService.Transfer(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute transfer", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
