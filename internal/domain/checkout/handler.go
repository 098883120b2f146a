package checkout

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jugad/internal/domain/selection"
	"jugad/internal/pkg/response"
)

type Handler struct {
	service   *Service
	selection *selection.Service
}

func NewHandler(service *Service, sel *selection.Service) *Handler {
	return &Handler{service: service, selection: sel}
}

// Pay POST /checkout
//
// The authentication check happens here, before the service is invoked, so
// an anonymous click gets its 401 immediately and nothing is tracked.
func (h *Handler) Pay(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "sign in to complete the purchase")
		return
	}

	sessionID := strings.TrimSpace(c.GetHeader(selection.SessionHeader))
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_SESSION", "missing session id")
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	offer, ok := h.selection.Resolve(sessionID)
	if !ok {
		response.Error(c, http.StatusBadRequest, "NOTHING_SELECTED", ErrNothingSelected.Error())
		return
	}

	order, err := h.service.Pay(c.Request.Context(), userID, offer, req.PromoCode)
	if err != nil {
		var payErr *PaymentError
		switch {
		case errors.Is(err, ErrCheckoutInProgress):
			response.Error(c, http.StatusConflict, "CHECKOUT_IN_PROGRESS", err.Error())
		case errors.Is(err, ErrAuthRequired):
			response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", err.Error())
		case errors.As(err, &payErr):
			response.Error(c, http.StatusPaymentRequired, "PAYMENT_FAILED", payErr.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "failed to complete checkout")
		}
		return
	}

	h.selection.Clear(sessionID)
	response.Success(c, http.StatusOK, PayResponse{Order: order, Message: "Paiement confirmé"})
}

// ListOrders GET /orders
func (h *Handler) ListOrders(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "authentication required")
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load orders")
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// currentUserID reads the optional auth context. Zero means anonymous.
func currentUserID(c *gin.Context) int64 {
	v, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}
