package repositories

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// MaxPageSize caps every list query.
const MaxPageSize = 200

// IsNotFoundError reports whether err means the record does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicateError reports whether err is a unique constraint violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, gorm.ErrDuplicatedKey)
}

// ===== SHARED FILTER STRUCTS =====

type ChallengeFilters struct {
	Type      *string                 `json:"type"`
	Status    *models.ChallengeStatus `json:"status"`
	CreatedBy *string                 `json:"created_by"`
	Limit     int                     `json:"limit"`
	Offset    int                     `json:"offset"`
	SortBy    string                  `json:"sort_by"`    // "created_at", "id", "type"
	SortOrder string                  `json:"sort_order"` // "asc", "desc"
}

type AnswerFilters struct {
	Result *models.AnswerResult `json:"result"`
	UserID *string              `json:"user_id"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// ===== REPOSITORIES =====

// ChallengeRepository stores challenge content.
type ChallengeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, challenge *models.Challenge) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Challenge, error)
	Update(ctx context.Context, tx *gorm.DB, challenge *models.Challenge) error
	List(ctx context.Context, tx *gorm.DB, filters ChallengeFilters) ([]*models.Challenge, int64, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]*models.Challenge, error)
}

// AnswerRepository stores encoded answers and their grading results.
type AnswerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, answer *models.Answer) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Answer, error)
	GetByChallengeAndAssessment(ctx context.Context, tx *gorm.DB, challengeID, assessmentID uint, userID string) (*models.Answer, error)
	ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint, filters AnswerFilters) ([]*models.Answer, error)
	UpdateResult(ctx context.Context, tx *gorm.DB, id uint, result models.AnswerResult, details datatypes.JSON) error
}

// Repository groups the repositories behind one transaction boundary.
type Repository interface {
	Challenge() ChallengeRepository
	Answer() AnswerRepository
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}
