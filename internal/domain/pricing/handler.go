package pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jugad/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetPage returns the full pricing-page payload. Public endpoint.
func (h *Handler) GetPage(c *gin.Context) {
	variant := c.DefaultQuery("variant", "default")
	response.Success(c, http.StatusOK, h.service.Page(variant))
}

func (h *Handler) GetPlans(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Plans())
}

func (h *Handler) GetPacks(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Packs())
}

func (h *Handler) GetCreditScale(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.CreditScale())
}

// GetRecommendation runs the recommender for ?duration=N&mode=subscription|credits.
func (h *Handler) GetRecommendation(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_DURATION", "duration must be an integer")
		return
	}

	mode, ok := ParseMode(c.DefaultQuery("mode", string(ModeSubscription)))
	if !ok {
		response.Error(c, http.StatusBadRequest, "INVALID_MODE", ErrInvalidMode.Error())
		return
	}

	reco, err := h.service.Recommend(days, mode)
	if err != nil {
		switch {
		case errors.Is(err, ErrDurationOutOfRange):
			response.Error(c, http.StatusBadRequest, "DURATION_OUT_OF_RANGE", err.Error())
		case errors.Is(err, ErrNoPackLargeEnough):
			response.Error(c, http.StatusNotFound, "NO_PACK_LARGE_ENOUGH", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "RECOMMENDATION_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, reco)
}
