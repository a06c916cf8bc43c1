package handlers

import (
	"fmt"
	"net/http"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/SAP-F-2025/challenge-service/internal/services"
	"github.com/SAP-F-2025/challenge-service/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReviewHandler struct {
	BaseHandler
	reviewService services.ReviewService
	exporter      services.ReviewExporter
}

func NewReviewHandler(reviewService services.ReviewService, exporter services.ReviewExporter, logger utils.Logger) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(logger),
		reviewService: reviewService,
		exporter:      exporter,
	}
}

// GetReview returns the correction screen of an answer
// @Router /answers/{id}/review [get]
func (h *ReviewHandler) GetReview(c *gin.Context) {
	answerID := h.parseIDParam(c, "id")
	if answerID == 0 {
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	review, err := h.reviewService.Review(c.Request.Context(), answerID, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// ListAssessmentReviews returns the reviews of every answer in an assessment
// @Router /assessments/{id}/reviews [get]
func (h *ReviewHandler) ListAssessmentReviews(c *gin.Context) {
	assessmentID := h.parseIDParam(c, "id")
	if assessmentID == 0 {
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	page, size := parsePage(c, 50)
	filters := repositories.AnswerFilters{Limit: size, Offset: (page - 1) * size}
	if userID := c.Query("user_id"); userID != "" {
		filters.UserID = &userID
	}
	if result := c.Query("result"); result != "" {
		answerResult := models.AnswerResult(result)
		filters.Result = &answerResult
	}

	reviews, err := h.reviewService.ReviewAssessment(c.Request.Context(), assessmentID, filters, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": reviews, "page": page, "size": size})
}

// ExportAssessmentReview downloads the reviews of an assessment as xlsx
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Router /assessments/{id}/review.xlsx [get]
func (h *ReviewHandler) ExportAssessmentReview(c *gin.Context) {
	assessmentID := h.parseIDParam(c, "id")
	if assessmentID == 0 {
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	data, err := h.exporter.ExportAssessment(c.Request.Context(), assessmentID, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="assessment-%d-review.xlsx"`, assessmentID))
	c.Data(http.StatusOK, xlsxContentType, data)
}
