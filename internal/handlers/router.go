package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/challenge-service/internal/services"
	"github.com/SAP-F-2025/challenge-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	challengeHandler *ChallengeHandler
	answerHandler    *AnswerHandler
	reviewHandler    *ReviewHandler
	auth             gin.HandlerFunc
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	tokenParser TokenParser,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		challengeHandler: NewChallengeHandler(serviceManager.Challenge(), logger),
		answerHandler:    NewAnswerHandler(serviceManager.Answer(), logger),
		reviewHandler:    NewReviewHandler(serviceManager.Review(), serviceManager.Exporter(), logger),
		auth:             AuthMiddleware(tokenParser),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1", requestContext, hm.auth)
	{
		challenges := v1.Group("/challenges")
		{
			challenges.POST("", hm.challengeHandler.CreateChallenge)
			challenges.GET("", hm.challengeHandler.ListChallenges)
			challenges.GET("/:id", hm.challengeHandler.GetChallenge)
			challenges.PUT("/:id", hm.challengeHandler.UpdateChallenge)
			challenges.GET("/:id/render", hm.challengeHandler.RenderChallenge)
			challenges.POST("/:id/answers", hm.answerHandler.SubmitAnswer)
		}

		answers := v1.Group("/answers")
		{
			answers.GET("/:id/review", hm.reviewHandler.GetReview)
			answers.PUT("/:id/result", hm.answerHandler.RecordResult)
		}

		assessments := v1.Group("/assessments")
		{
			assessments.GET("/:id/reviews", hm.reviewHandler.ListAssessmentReviews)
			assessments.GET("/:id/review.xlsx", hm.reviewHandler.ExportAssessmentReview)
		}
	}
}

// requestContext carries the request id into service logs.
func requestContext(c *gin.Context) {
	if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
		c.Request = c.Request.WithContext(services.WithRequestID(c.Request.Context(), requestID))
	}
	c.Next()
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "challenge-service",
	})
}
