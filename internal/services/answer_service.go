package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/events"
	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/SAP-F-2025/challenge-service/internal/validator"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type answerService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	validator *validator.Validator
	logger    *ServiceLogger
}

func NewAnswerService(repo repositories.Repository, publisher events.EventPublisher, validator *validator.Validator, logger *slog.Logger) AnswerService {
	return &answerService{
		repo:      repo,
		publisher: publisher,
		validator: validator,
		logger:    NewServiceLogger(logger, LogConfig{Service: "challenge-service", Component: "answer"}),
	}
}

func (s *answerService) Submit(ctx context.Context, challengeID uint, req *SubmitAnswerRequest, userID string) (answer *models.Answer, err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "submit_answer", userID, challengeID, "challenge", time.Since(start), err)
	}()

	if err := s.validator.ValidateStruct(req); err != nil {
		s.logger.logRejected(ctx, "submit_answer", userID, err)
		return nil, err
	}

	challenge, err := s.repo.Challenge().GetByID(ctx, nil, challengeID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if challenge.Status == models.ChallengeArchived {
		return nil, challengeClosedError(challenge.ID)
	}

	kind, err := challenge.Kind()
	if err != nil {
		return nil, fmt.Errorf("challenge %d: %w", challengeID, err)
	}

	state, err := EncodeAnswer(kind, challenge.Proposals, req)
	if err != nil {
		return nil, err
	}

	answer = &models.Answer{
		ChallengeID:  challenge.ID,
		AssessmentID: req.AssessmentID,
		UserID:       userID,
		Value:        state.Encode(),
		Result:       models.ResultPending,
		TimeSpent:    req.TimeSpent,
		TimedOut:     req.TimedOut,
	}
	if state.IsAbandoned() {
		answer.Result = models.ResultAbandoned
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		_, err := s.repo.Answer().GetByChallengeAndAssessment(ctx, tx, challenge.ID, req.AssessmentID, userID)
		if err == nil {
			return ErrAnswerExists
		}
		if !repositories.IsNotFoundError(err) {
			return fmt.Errorf("failed to check existing answer: %w", err)
		}
		if err := s.repo.Answer().Create(ctx, tx, answer); err != nil {
			if repositories.IsDuplicateError(err) {
				return ErrAnswerExists
			}
			return fmt.Errorf("failed to store answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewAnswerSubmittedEvent(events.AnswerSubmittedEvent{
		AnswerID:      answer.ID,
		ChallengeID:   answer.ChallengeID,
		AssessmentID:  answer.AssessmentID,
		UserID:        answer.UserID,
		ChallengeType: challenge.Type,
		Value:         answer.Value,
		TimedOut:      answer.TimedOut,
		TimeSpent:     answer.TimeSpent,
	}, state.IsAbandoned()))

	return answer, nil
}

func (s *answerService) RecordResult(ctx context.Context, answerID uint, req *RecordResultRequest, grader *models.User) (answer *models.Answer, err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "record_result", userIDOf(grader), answerID, "answer", time.Since(start), err)
	}()

	if !grader.HasRole(models.RoleGrader) {
		return nil, NewPermissionError(userIDOf(grader), answerID, "answer", "record_result", "grader role required")
	}

	if err := s.validator.ValidateStruct(req); err != nil {
		s.logger.logRejected(ctx, "record_result", grader.ID, err)
		return nil, err
	}

	answer, err = s.repo.Answer().GetByID(ctx, nil, answerID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	if kind, kindErr := answer.Challenge.Kind(); kindErr == nil && kind.IsText() {
		declared := proposal.DeclaredFields(answer.Challenge.Proposals)
		for field := range req.Correctness {
			if !slices.Contains(declared, field) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
		}
	}

	var details datatypes.JSON
	if len(req.Correctness) > 0 {
		payload, err := json.Marshal(req.Correctness)
		if err != nil {
			return nil, fmt.Errorf("failed to encode correctness: %w", err)
		}
		details = payload
	}

	if err := s.repo.Answer().UpdateResult(ctx, nil, answerID, req.Result, details); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to record result: %w", err)
	}
	answer.Result = req.Result
	answer.ResultDetails = details

	s.publish(ctx, events.NewAnswerGradedEvent(events.AnswerGradedEvent{
		AnswerID:     answer.ID,
		ChallengeID:  answer.ChallengeID,
		AssessmentID: answer.AssessmentID,
		UserID:       answer.UserID,
		Result:       string(answer.Result),
		Correctness:  req.Correctness,
	}))

	return answer, nil
}

// publish never fails the operation; the answer is already stored.
func (s *answerService) publish(ctx context.Context, event *events.AnswerEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishAnswerEvent(ctx, event); err != nil {
		s.logger.Warn(ctx, "failed to publish answer event", "event_type", event.Type, "error", err)
	}
}
