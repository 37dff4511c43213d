package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles HTTP requests for the contract ledger
type ContractHandler struct {
	contractService service.ContractServiceInterface
	transferService service.TransferServiceInterface
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService service.ContractServiceInterface, transferService service.TransferServiceInterface) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		transferService: transferService,
	}
}

// ListContracts handles GET /api/v1/contracts
func (h *ContractHandler) ListContracts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	resp, err := h.contractService.List(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contracts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPlayerContracts handles GET /api/v1/players/:id/contracts and returns
// the player's full contract history, newest first.
func (h *ContractHandler) GetPlayerContracts(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	contracts, err := h.contractService.History(playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contracts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts, "count": len(contracts)})
}

// GetPlayerOpenContracts handles GET /api/v1/players/:id/contracts/open
func (h *ContractHandler) GetPlayerOpenContracts(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	contracts, err := h.contractService.OpenContracts(playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get open contracts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": contracts, "count": len(contracts)})
}

// CreateInitialContract handles POST /api/v1/contracts. It signs a player
// with no open contract to a club; moving a player between clubs goes
// through POST /api/v1/transfers instead.
func (h *ContractHandler) CreateInitialContract(c *gin.Context) {
	var req service.InitialContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.transferService.CreateInitialContract(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
