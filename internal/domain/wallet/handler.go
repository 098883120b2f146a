package wallet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jugad/internal/domain/pricing"
	"jugad/internal/pkg/response"
)

type Handler struct {
	service *Service
	catalog *pricing.Catalog
}

func NewHandler(service *Service, catalog *pricing.Catalog) *Handler {
	return &Handler{service: service, catalog: catalog}
}

// SpendRequest debits credits for one itinerary action from the scale.
type SpendRequest struct {
	Action string `json:"action" binding:"required"`
}

func (h *Handler) GetWallet(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	wallet, err := h.service.GetOrCreateWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "WALLET_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, wallet)
}

func (h *Handler) ListTransactions(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	txns, err := h.service.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "WALLET_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, txns)
}

// Spend debits the wallet by the scale cost of the named action.
func (h *Handler) Spend(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	var cost int
	for _, entry := range h.catalog.Scale {
		if entry.Action == req.Action {
			cost = entry.Cost
			break
		}
	}
	if cost == 0 {
		response.Error(c, http.StatusNotFound, "UNKNOWN_ACTION", "action is not in the credit scale")
		return
	}

	wallet, txn, err := h.service.Spend(c.Request.Context(), userID, int64(cost), req.Action)
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			response.Error(c, http.StatusPaymentRequired, "INSUFFICIENT_CREDITS", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "WALLET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet, "transaction": txn})
}

// mustUserID extracts the user ID from the JWT context.
// Returns 0 and writes 401 if not found.
func mustUserID(c *gin.Context) int64 {
	id, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return 0
	}
	switch v := id.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid user id")
	return 0
}
