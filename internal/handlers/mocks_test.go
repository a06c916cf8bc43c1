package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/SAP-F-2025/challenge-service/internal/services"
	"github.com/SAP-F-2025/challenge-service/internal/utils"
	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/stretchr/testify/mock"
)

type MockChallengeService struct {
	mock.Mock
}

func (m *MockChallengeService) Create(ctx context.Context, req *services.CreateChallengeRequest, user *models.User) (*models.Challenge, error) {
	args := m.Called(ctx, req, user)
	challenge, _ := args.Get(0).(*models.Challenge)
	return challenge, args.Error(1)
}

func (m *MockChallengeService) Update(ctx context.Context, id uint, req *services.UpdateChallengeRequest, user *models.User) (*models.Challenge, error) {
	args := m.Called(ctx, id, req, user)
	challenge, _ := args.Get(0).(*models.Challenge)
	return challenge, args.Error(1)
}

func (m *MockChallengeService) Get(ctx context.Context, id uint, user *models.User) (*models.Challenge, error) {
	args := m.Called(ctx, id, user)
	challenge, _ := args.Get(0).(*models.Challenge)
	return challenge, args.Error(1)
}

func (m *MockChallengeService) List(ctx context.Context, filters repositories.ChallengeFilters, user *models.User) ([]*models.Challenge, int64, error) {
	args := m.Called(ctx, filters, user)
	challenges, _ := args.Get(0).([]*models.Challenge)
	return challenges, args.Get(1).(int64), args.Error(2)
}

func (m *MockChallengeService) Render(ctx context.Context, id uint) (*services.ChallengeRendering, error) {
	args := m.Called(ctx, id)
	rendering, _ := args.Get(0).(*services.ChallengeRendering)
	return rendering, args.Error(1)
}

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) Submit(ctx context.Context, challengeID uint, req *services.SubmitAnswerRequest, userID string) (*models.Answer, error) {
	args := m.Called(ctx, challengeID, req, userID)
	answer, _ := args.Get(0).(*models.Answer)
	return answer, args.Error(1)
}

func (m *MockAnswerService) RecordResult(ctx context.Context, answerID uint, req *services.RecordResultRequest, grader *models.User) (*models.Answer, error) {
	args := m.Called(ctx, answerID, req, grader)
	answer, _ := args.Get(0).(*models.Answer)
	return answer, args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Review(ctx context.Context, answerID uint, user *models.User) (*models.Review, error) {
	args := m.Called(ctx, answerID, user)
	review, _ := args.Get(0).(*models.Review)
	return review, args.Error(1)
}

func (m *MockReviewService) ReviewAssessment(ctx context.Context, assessmentID uint, filters repositories.AnswerFilters, user *models.User) ([]*models.Review, error) {
	args := m.Called(ctx, assessmentID, filters, user)
	reviews, _ := args.Get(0).([]*models.Review)
	return reviews, args.Error(1)
}

type MockReviewExporter struct {
	mock.Mock
}

func (m *MockReviewExporter) ExportAssessment(ctx context.Context, assessmentID uint, user *models.User) ([]byte, error) {
	args := m.Called(ctx, assessmentID, user)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

type mockServiceManager struct {
	challenges *MockChallengeService
	answers    *MockAnswerService
	reviews    *MockReviewService
	exporter   *MockReviewExporter
}

func newMockServiceManager() *mockServiceManager {
	return &mockServiceManager{
		challenges: &MockChallengeService{},
		answers:    &MockAnswerService{},
		reviews:    &MockReviewService{},
		exporter:   &MockReviewExporter{},
	}
}

func (m *mockServiceManager) Challenge() services.ChallengeService { return m.challenges }
func (m *mockServiceManager) Answer() services.AnswerService       { return m.answers }
func (m *mockServiceManager) Review() services.ReviewService       { return m.reviews }
func (m *mockServiceManager) Exporter() services.ReviewExporter    { return m.exporter }

type stubTokenParser struct {
	claims *casdoorsdk.Claims
	err    error
}

func (s stubTokenParser) ParseJwtToken(token string) (*casdoorsdk.Claims, error) {
	return s.claims, s.err
}

func discardLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
