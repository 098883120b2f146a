package selection

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jugad/internal/domain/pricing"
	"jugad/internal/pkg/response"
)

// SessionHeader carries the anonymous pricing-page session id.
const SessionHeader = "X-Session-ID"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetState returns the session's selection and its resolved offer.
func (h *Handler) GetState(c *gin.Context) {
	sessionID, ok := mustSessionID(c)
	if !ok {
		return
	}

	state := h.service.Get(sessionID)
	offer, _ := h.service.Resolve(sessionID)
	response.Success(c, http.StatusOK, StateResponse{State: state, Offer: offer})
}

func (h *Handler) SelectPlan(c *gin.Context) {
	sessionID, ok := mustSessionID(c)
	if !ok {
		return
	}

	var req SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	state, err := h.service.SelectPlan(sessionID, req.PlanID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "PLAN_NOT_FOUND", err.Error())
		return
	}
	h.respondWithState(c, sessionID, state)
}

func (h *Handler) SelectPack(c *gin.Context) {
	sessionID, ok := mustSessionID(c)
	if !ok {
		return
	}

	var req SelectPackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	state, err := h.service.SelectPack(sessionID, req.PackID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "PACK_NOT_FOUND", err.Error())
		return
	}
	h.respondWithState(c, sessionID, state)
}

func (h *Handler) SetMode(c *gin.Context) {
	sessionID, ok := mustSessionID(c)
	if !ok {
		return
	}

	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	state, err := h.service.SetMode(sessionID, pricing.Mode(req.Mode))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MODE", err.Error())
		return
	}
	h.respondWithState(c, sessionID, state)
}

func (h *Handler) SetBillingCycle(c *gin.Context) {
	sessionID, ok := mustSessionID(c)
	if !ok {
		return
	}

	var req SetBillingCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	state, err := h.service.SetBillingCycle(sessionID, pricing.BillingCycle(req.Cycle))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_CYCLE", err.Error())
		return
	}
	h.respondWithState(c, sessionID, state)
}

func (h *Handler) ApplyRecommendation(c *gin.Context) {
	sessionID, ok := mustSessionID(c)
	if !ok {
		return
	}

	var req ApplyRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	state, _, err := h.service.ApplyRecommendation(sessionID, req.TripDurationDays)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrNoPackLargeEnough):
			response.Error(c, http.StatusNotFound, "NO_PACK_LARGE_ENOUGH", err.Error())
		case errors.Is(err, pricing.ErrDurationOutOfRange):
			response.Error(c, http.StatusBadRequest, "DURATION_OUT_OF_RANGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "RECOMMENDATION_FAILED", err.Error())
		}
		return
	}
	h.respondWithState(c, sessionID, state)
}

func (h *Handler) respondWithState(c *gin.Context, sessionID string, state State) {
	offer, _ := h.service.Resolve(sessionID)
	response.Success(c, http.StatusOK, StateResponse{State: state, Offer: offer})
}

// mustSessionID extracts the session id header. Writes 400 if missing.
func mustSessionID(c *gin.Context) (string, bool) {
	sessionID := strings.TrimSpace(c.GetHeader(SessionHeader))
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_SESSION", ErrMissingSession.Error())
		return "", false
	}
	return sessionID, true
}
