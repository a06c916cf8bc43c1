package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/cache"
	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/SAP-F-2025/challenge-service/internal/validator"
)

type challengeService struct {
	repo      repositories.Repository
	templates *cache.TemplateCache
	validator *validator.Validator
	logger    *ServiceLogger
}

func NewChallengeService(repo repositories.Repository, templates *cache.TemplateCache, validator *validator.Validator, logger *slog.Logger) ChallengeService {
	return &challengeService{
		repo:      repo,
		templates: templates,
		validator: validator,
		logger:    NewServiceLogger(logger, LogConfig{Service: "challenge-service", Component: "challenge"}),
	}
}

func (s *challengeService) Create(ctx context.Context, req *CreateChallengeRequest, user *models.User) (challenge *models.Challenge, err error) {
	start := time.Now()
	defer func() {
		var id uint
		if challenge != nil {
			id = challenge.ID
		}
		s.logger.LogOperation(ctx, "create_challenge", userIDOf(user), id, "challenge", time.Since(start), err)
	}()

	if !user.HasRole(models.RoleTeacher) {
		return nil, NewPermissionError(userIDOf(user), 0, "challenge", "create", "teacher role required")
	}

	challenge = &models.Challenge{
		Type:        req.Type,
		Instruction: req.Instruction,
		Proposals:   req.Proposals,
		Solution:    req.Solution,
		Timer:       req.Timer,
		Status:      models.ChallengeValidated,
		CreatedBy:   user.ID,
	}

	if err := s.validator.Validate(challenge); err != nil {
		s.logger.logRejected(ctx, "create_challenge", user.ID, err)
		return nil, err
	}

	if err := s.repo.Challenge().Create(ctx, nil, challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	return challenge, nil
}

func (s *challengeService) Update(ctx context.Context, id uint, req *UpdateChallengeRequest, user *models.User) (challenge *models.Challenge, err error) {
	start := time.Now()
	defer func() {
		s.logger.LogOperation(ctx, "update_challenge", userIDOf(user), id, "challenge", time.Since(start), err)
	}()

	challenge, err = s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.Owns(challenge.CreatedBy) {
		return nil, NewPermissionError(userIDOf(user), id, "challenge", "update", "not the author")
	}

	if req.Instruction != nil {
		challenge.Instruction = *req.Instruction
	}
	if req.Proposals != nil {
		challenge.Proposals = *req.Proposals
	}
	if req.Solution != nil {
		challenge.Solution = *req.Solution
	}
	if req.Timer != nil {
		challenge.Timer = req.Timer
	}
	if req.Status != nil {
		challenge.Status = *req.Status
	}

	if err := s.validator.Validate(challenge); err != nil {
		s.logger.logRejected(ctx, "update_challenge", user.ID, err)
		return nil, err
	}

	if err := s.repo.Challenge().Update(ctx, nil, challenge); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to update challenge: %w", err)
	}

	if s.templates != nil {
		if err := s.templates.Invalidate(ctx, id); err != nil {
			s.logger.Warn(ctx, "failed to invalidate cached renderings", "challenge_id", id, "error", err)
		}
	}
	return challenge, nil
}

// Get returns the challenge, without its solution unless user is the author.
func (s *challengeService) Get(ctx context.Context, id uint, user *models.User) (*models.Challenge, error) {
	challenge, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewFor(challenge, user), nil
}

func (s *challengeService) load(ctx context.Context, id uint) (*models.Challenge, error) {
	challenge, err := s.repo.Challenge().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return challenge, nil
}

func (s *challengeService) List(ctx context.Context, filters repositories.ChallengeFilters, user *models.User) ([]*models.Challenge, int64, error) {
	challenges, total, err := s.repo.Challenge().List(ctx, nil, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list challenges: %w", err)
	}
	for i, challenge := range challenges {
		challenges[i] = viewFor(challenge, user)
	}
	return challenges, total, nil
}

func (s *challengeService) Render(ctx context.Context, id uint) (*ChallengeRendering, error) {
	challenge, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	kind, err := challenge.Kind()
	if err != nil {
		return nil, fmt.Errorf("challenge %d: %w", id, err)
	}

	rendering, err := renderTemplate(ctx, s.templates, challenge, kind)
	if err != nil {
		return nil, err
	}

	return &ChallengeRendering{
		ChallengeID: challenge.ID,
		Instruction: challenge.Instruction,
		Timer:       challenge.Timer,
		Rendering:   rendering,
	}, nil
}

// viewFor strips the solution from a copy of challenge unless user wrote it.
func viewFor(challenge *models.Challenge, user *models.User) *models.Challenge {
	if user.Owns(challenge.CreatedBy) {
		return challenge
	}
	view := *challenge
	view.Solution = ""
	return &view
}

func userIDOf(user *models.User) string {
	if user == nil {
		return ""
	}
	return user.ID
}
