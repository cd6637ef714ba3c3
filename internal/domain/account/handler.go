package account

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adledger/internal/domain/ledger"
	"adledger/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user identity")
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	req.ID = userID

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user_id": userID})
}

func (h *Handler) Balance(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user identity")
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance})
}

func (h *Handler) Referrals(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing user identity")
		return
	}

	summary, err := h.service.ReferralSummary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) UserInfo(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "user id must be a number")
		return
	}

	info, err := h.service.UserInfo(c.Request.Context(), targetID)
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "TRY_AGAIN", "Something went wrong, try again later")
		return
	}

	response.Success(c, http.StatusOK, info)
}
