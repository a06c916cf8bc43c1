package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MockChallengeRepository is a mock implementation of ChallengeRepository
type MockChallengeRepository struct {
	mock.Mock
}

func (m *MockChallengeRepository) Create(ctx context.Context, tx *gorm.DB, challenge *models.Challenge) error {
	args := m.Called(ctx, tx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Challenge, error) {
	args := m.Called(ctx, tx, id)
	challenge, _ := args.Get(0).(*models.Challenge)
	return challenge, args.Error(1)
}

func (m *MockChallengeRepository) Update(ctx context.Context, tx *gorm.DB, challenge *models.Challenge) error {
	args := m.Called(ctx, tx, challenge)
	return args.Error(0)
}

func (m *MockChallengeRepository) List(ctx context.Context, tx *gorm.DB, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error) {
	args := m.Called(ctx, tx, filters)
	challenges, _ := args.Get(0).([]*models.Challenge)
	return challenges, args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeRepository) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]*models.Challenge, error) {
	args := m.Called(ctx, tx, ids)
	challenges, _ := args.Get(0).(map[uint]*models.Challenge)
	return challenges, args.Error(1)
}

// MockAnswerRepository is a mock implementation of AnswerRepository
type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Create(ctx context.Context, tx *gorm.DB, answer *models.Answer) error {
	args := m.Called(ctx, tx, answer)
	return args.Error(0)
}

func (m *MockAnswerRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Answer, error) {
	args := m.Called(ctx, tx, id)
	answer, _ := args.Get(0).(*models.Answer)
	return answer, args.Error(1)
}

func (m *MockAnswerRepository) GetByChallengeAndAssessment(ctx context.Context, tx *gorm.DB, challengeID, assessmentID uint, userID string) (*models.Answer, error) {
	args := m.Called(ctx, tx, challengeID, assessmentID, userID)
	answer, _ := args.Get(0).(*models.Answer)
	return answer, args.Error(1)
}

func (m *MockAnswerRepository) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint, filters repositories.AnswerFilters) ([]*models.Answer, error) {
	args := m.Called(ctx, tx, assessmentID, filters)
	answers, _ := args.Get(0).([]*models.Answer)
	return answers, args.Error(1)
}

func (m *MockAnswerRepository) UpdateResult(ctx context.Context, tx *gorm.DB, id uint, result models.AnswerResult, details datatypes.JSON) error {
	args := m.Called(ctx, tx, id, result, details)
	return args.Error(0)
}

// MockRepository runs transactions inline with a nil handle.
type MockRepository struct {
	challenges *MockChallengeRepository
	answers    *MockAnswerRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		challenges: &MockChallengeRepository{},
		answers:    &MockAnswerRepository{},
	}
}

func (m *MockRepository) Challenge() repositories.ChallengeRepository { return m.challenges }
func (m *MockRepository) Answer() repositories.AnswerRepository       { return m.answers }

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

var (
	teacher = &models.User{ID: "author-1", Roles: []models.UserRole{models.RoleTeacher}}
	grader  = &models.User{ID: "grader-1", Roles: []models.UserRole{models.RoleGrader}}
	student = &models.User{ID: "user-1", Roles: []models.UserRole{models.RoleStudent}}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
