package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/SAP-F-2025/challenge-service/internal/services"
	"github.com/SAP-F-2025/challenge-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct {
	BaseHandler
	challengeService services.ChallengeService
}

func NewChallengeHandler(challengeService services.ChallengeService, logger utils.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		BaseHandler:      NewBaseHandler(logger),
		challengeService: challengeService,
	}
}

// CreateChallenge creates a new challenge
// @Summary Create challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param challenge body services.CreateChallengeRequest true "Challenge data"
// @Success 201 {object} models.Challenge
// @Failure 400 {object} ErrorResponse
// @Router /challenges [post]
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	h.LogRequest(c, "Creating challenge")

	var req services.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	challenge, err := h.challengeService.Create(c.Request.Context(), &req, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// UpdateChallenge replaces the given fields of a challenge
// @Router /challenges/{id} [put]
func (h *ChallengeHandler) UpdateChallenge(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	challenge, err := h.challengeService.Update(c.Request.Context(), id, &req, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// GetChallenge retrieves a challenge by ID; the solution is only included for its author
// @Router /challenges/{id} [get]
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	challenge, err := h.challengeService.Get(c.Request.Context(), id, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// ListChallenges lists challenges filtered by type, status and author
// @Router /challenges [get]
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	page, size := parsePage(c, 20)

	filters := repositories.ChallengeFilters{
		Limit:     size,
		Offset:    (page - 1) * size,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if challengeType := c.Query("type"); challengeType != "" {
		filters.Type = &challengeType
	}
	if status := c.Query("status"); status != "" {
		challengeStatus := models.ChallengeStatus(status)
		filters.Status = &challengeStatus
	}
	if createdBy := c.Query("created_by"); createdBy != "" {
		filters.CreatedBy = &createdBy
	}

	challenges, total, err := h.challengeService.List(c.Request.Context(), filters, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Items: challenges, Total: total, Page: page, Size: size})
}

// RenderChallenge returns the parsed proposals of a challenge without its solution
// @Router /challenges/{id}/render [get]
func (h *ChallengeHandler) RenderChallenge(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	rendering, err := h.challengeService.Render(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rendering)
}
