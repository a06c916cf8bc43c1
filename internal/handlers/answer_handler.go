package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/challenge-service/internal/services"
	"github.com/SAP-F-2025/challenge-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	BaseHandler
	answerService services.AnswerService
}

func NewAnswerHandler(answerService services.AnswerService, logger utils.Logger) *AnswerHandler {
	return &AnswerHandler{
		BaseHandler:   NewBaseHandler(logger),
		answerService: answerService,
	}
}

// SubmitAnswer stores the caller's answer to a challenge
// @Summary Submit answer
// @Tags answers
// @Accept json
// @Produce json
// @Param id path uint true "Challenge ID"
// @Param answer body services.SubmitAnswerRequest true "Answer"
// @Success 201 {object} models.Answer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /challenges/{id}/answers [post]
func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	challengeID := h.parseIDParam(c, "id")
	if challengeID == 0 {
		return
	}

	var req services.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	answer, err := h.answerService.Submit(c.Request.Context(), challengeID, &req, user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, answer)
}

// RecordResult stores the grader's verdict for an answer
// @Failure 403 {object} ErrorResponse
// @Router /answers/{id}/result [put]
func (h *AnswerHandler) RecordResult(c *gin.Context) {
	answerID := h.parseIDParam(c, "id")
	if answerID == 0 {
		return
	}

	var req services.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	answer, err := h.answerService.RecordResult(c.Request.Context(), answerID, &req, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}
