package ads

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adledger/internal/pkg/response"
	"adledger/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListAds(c *gin.Context) {
	active, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	summaries := make([]AdSummary, 0, len(active))
	for _, ad := range active {
		summaries = append(summaries, AdSummary{ID: ad.ID, Title: ad.Title})
	}

	response.Success(c, http.StatusOK, gin.H{"ads": summaries})
}

func (h *Handler) ViewAd(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user identity")
		return
	}

	adID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "ad id must be a number")
		return
	}

	reward, err := h.service.Credit(c.Request.Context(), userID, adID)
	if err != nil {
		if errors.Is(err, ErrAdUnavailable) {
			// Not a failure: the ad is simply gone, no payout happened.
			response.Success(c, http.StatusOK, gin.H{"credited": false})
			return
		}
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"credited": true, "reward": reward})
}

func (h *Handler) CreateAd(c *gin.Context) {
	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid ad", fields)
		return
	}

	ad, err := h.service.CreateAd(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "reward must be a non-negative number")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"ad": ad})
}

func (h *Handler) ToggleAd(c *gin.Context) {
	adID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "ad id must be a number")
		return
	}

	if err := h.service.ToggleAd(c.Request.Context(), adID); err != nil {
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ad_id": adID})
}
