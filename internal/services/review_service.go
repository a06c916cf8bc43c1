package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/cache"
	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
)

type reviewService struct {
	repo      repositories.Repository
	templates *cache.TemplateCache
	logger    *ServiceLogger
}

func NewReviewService(repo repositories.Repository, templates *cache.TemplateCache, logger *slog.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		templates: templates,
		logger:    NewServiceLogger(logger, LogConfig{Service: "challenge-service", Component: "review"}),
	}
}

func (s *reviewService) Review(ctx context.Context, answerID uint, user *models.User) (review *models.Review, err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "review_answer", userIDOf(user), answerID, "answer", time.Since(start), err)
	}()

	answer, err := s.repo.Answer().GetByID(ctx, nil, answerID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}
	if !canReview(answer, user) {
		return nil, NewPermissionError(userIDOf(user), answerID, "answer", "review", "not the answer owner, author or a grader")
	}

	return s.build(ctx, answer)
}

// ReviewAssessment lists reviews of an assessment. Users without the grader
// role only see their own answers.
func (s *reviewService) ReviewAssessment(ctx context.Context, assessmentID uint, filters repositories.AnswerFilters, user *models.User) (reviews []*models.Review, err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "review_assessment", userIDOf(user), assessmentID, "assessment", time.Since(start), err)
	}()

	if !user.HasRole(models.RoleGrader) {
		if user == nil || (filters.UserID != nil && *filters.UserID != user.ID) {
			return nil, NewPermissionError(userIDOf(user), assessmentID, "assessment", "review", "other users' answers require the grader role")
		}
		own := user.ID
		filters.UserID = &own
	}

	answers, err := s.repo.Answer().ListByAssessment(ctx, nil, assessmentID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}

	reviews = make([]*models.Review, 0, len(answers))
	for _, answer := range answers {
		review, err := s.build(ctx, answer)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", answer.ID, err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// build assembles the review of an answer whose Challenge is loaded.
func (s *reviewService) build(ctx context.Context, answer *models.Answer) (*models.Review, error) {
	challenge := &answer.Challenge
	kind, err := challenge.Kind()
	if err != nil {
		return nil, fmt.Errorf("challenge %d: %w", challenge.ID, err)
	}

	if kind.IsText() && strings.TrimSpace(challenge.Solution) == "" {
		return nil, ErrSolutionMissing
	}

	correctness, err := proposal.DecodeCorrectness(string(answer.ResultDetails))
	if err != nil {
		return nil, err
	}

	state := proposal.ParseAnswerState(answer.Value)
	if kind == proposal.SingleText && len(correctness) == 0 && answer.IsGraded() && state.IsGiven() {
		// Graders report a single free-text answer through the overall result.
		if declared := proposal.DeclaredFields(challenge.Proposals); len(declared) > 0 {
			correctness = proposal.CorrectnessMap{declared[0]: answer.Result == models.ResultOK}
		}
	}

	comparisons, err := proposal.Assemble(kind, proposal.Stored{
		Template:    challenge.Proposals,
		Answer:      answer.Value,
		Solution:    challenge.Solution,
		Correctness: correctness,
	})
	if err != nil {
		return nil, err
	}

	rendering, err := renderTemplate(ctx, s.templates, challenge, kind)
	if err != nil {
		return nil, err
	}

	return &models.Review{
		AnswerID:     answer.ID,
		ChallengeID:  challenge.ID,
		AssessmentID: answer.AssessmentID,
		UserID:       answer.UserID,
		Kind:         kind,
		Instruction:  challenge.Instruction,
		Result:       answer.Result,
		Abandoned:    state.IsAbandoned(),
		DisplayValue: state.Display(),
		Rendering:    rendering,
		Comparisons:  comparisons,
	}, nil
}

func canReview(answer *models.Answer, user *models.User) bool {
	if user == nil {
		return false
	}
	return answer.UserID == user.ID ||
		user.HasRole(models.RoleGrader) ||
		user.Owns(answer.Challenge.CreatedBy)
}
