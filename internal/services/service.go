package services

import (
	"context"
	"log/slog"

	"github.com/SAP-F-2025/challenge-service/internal/cache"
	"github.com/SAP-F-2025/challenge-service/internal/events"
	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/SAP-F-2025/challenge-service/internal/validator"
)

// ===== SERVICE INTERFACES =====

// ChallengeService manages challenge content. Only teachers create
// challenges, only their author updates them, and Get and List leave the
// solution out for everyone else.
type ChallengeService interface {
	Create(ctx context.Context, req *CreateChallengeRequest, user *models.User) (*models.Challenge, error)
	Update(ctx context.Context, id uint, req *UpdateChallengeRequest, user *models.User) (*models.Challenge, error)
	Get(ctx context.Context, id uint, user *models.User) (*models.Challenge, error)
	List(ctx context.Context, filters repositories.ChallengeFilters, user *models.User) ([]*models.Challenge, int64, error)
	Render(ctx context.Context, id uint) (*ChallengeRendering, error)
}

type AnswerService interface {
	Submit(ctx context.Context, challengeID uint, req *SubmitAnswerRequest, userID string) (*models.Answer, error)
	// RecordResult requires the grader role.
	RecordResult(ctx context.Context, answerID uint, req *RecordResultRequest, grader *models.User) (*models.Answer, error)
}

// ReviewService builds correction screens. A review is visible to the user
// who answered, the challenge author and graders.
type ReviewService interface {
	Review(ctx context.Context, answerID uint, user *models.User) (*models.Review, error)
	ReviewAssessment(ctx context.Context, assessmentID uint, filters repositories.AnswerFilters, user *models.User) ([]*models.Review, error)
}

type ReviewExporter interface {
	ExportAssessment(ctx context.Context, assessmentID uint, user *models.User) ([]byte, error)
}

// ServiceManager hands out the services sharing one set of dependencies.
type ServiceManager interface {
	Challenge() ChallengeService
	Answer() AnswerService
	Review() ReviewService
	Exporter() ReviewExporter
}

// ===== REQUESTS AND RESPONSES =====

type CreateChallengeRequest struct {
	Type        string `json:"type" binding:"required"`
	Instruction string `json:"instruction" binding:"required"`
	Proposals   string `json:"proposals"`
	Solution    string `json:"solution"`
	Timer       *int   `json:"timer"`
}

// UpdateChallengeRequest replaces the fields that are set.
type UpdateChallengeRequest struct {
	Instruction *string                 `json:"instruction"`
	Proposals   *string                 `json:"proposals"`
	Solution    *string                 `json:"solution"`
	Timer       *int                    `json:"timer"`
	Status      *models.ChallengeStatus `json:"status"`
}

// SubmitAnswerRequest carries one answer in the shape matching the challenge
// type: Selected for choice challenges, Text for a single free-text field and
// Fields for several. Abandoned overrides all of them.
type SubmitAnswerRequest struct {
	AssessmentID uint              `json:"assessment_id" validate:"required"`
	Abandoned    bool              `json:"abandoned"`
	Selected     []int             `json:"selected" validate:"omitempty,dive,min=1"`
	Text         string            `json:"text"`
	Fields       map[string]string `json:"fields" validate:"omitempty,dive,keys,field_name,endkeys"`
	TimedOut     bool              `json:"timed_out"`
	TimeSpent    int               `json:"time_spent" validate:"min=0"`
}

// RecordResultRequest is what the grader reports for an answer.
type RecordResultRequest struct {
	Result      models.AnswerResult `json:"result" validate:"required,answer_result"`
	Correctness map[string]bool     `json:"correctness" validate:"omitempty,dive,keys,field_name,endkeys"`
}

// ChallengeRendering is the public view of a challenge: no solution.
type ChallengeRendering struct {
	ChallengeID uint   `json:"challenge_id"`
	Instruction string `json:"instruction"`
	Timer       *int   `json:"timer,omitempty"`
	proposal.Rendering
}

// ===== MANAGER =====

type serviceManager struct {
	challenge ChallengeService
	answer    AnswerService
	review    ReviewService
	exporter  ReviewExporter
}

// Dependencies groups what the services are built from. Templates may be
// nil, in which case templates are parsed on every request.
type Dependencies struct {
	Repo      repositories.Repository
	Templates *cache.TemplateCache
	Publisher events.EventPublisher
	Validator *validator.Validator
	Logger    *slog.Logger
}

func NewServiceManager(deps Dependencies) ServiceManager {
	review := NewReviewService(deps.Repo, deps.Templates, deps.Logger)
	return &serviceManager{
		challenge: NewChallengeService(deps.Repo, deps.Templates, deps.Validator, deps.Logger),
		answer:    NewAnswerService(deps.Repo, deps.Publisher, deps.Validator, deps.Logger),
		review:    review,
		exporter:  NewReviewExporter(review, deps.Logger),
	}
}

func (m *serviceManager) Challenge() ChallengeService { return m.challenge }
func (m *serviceManager) Answer() AnswerService       { return m.answer }
func (m *serviceManager) Review() ReviewService       { return m.review }
func (m *serviceManager) Exporter() ReviewExporter    { return m.exporter }

// renderTemplate parses through the cache when there is one.
func renderTemplate(ctx context.Context, templates *cache.TemplateCache, challenge *models.Challenge, kind proposal.Kind) (proposal.Rendering, error) {
	if templates == nil {
		return proposal.Render(kind, challenge.Proposals)
	}
	return templates.Rendering(ctx, challenge.ID, kind, challenge.Proposals)
}
