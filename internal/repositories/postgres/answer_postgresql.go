package postgres

import (
	"context"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnswerPostgreSQL struct {
	db *gorm.DB
}

func NewAnswerPostgreSQL(db *gorm.DB) repositories.AnswerRepository {
	return &AnswerPostgreSQL{db: db}
}

func (a AnswerPostgreSQL) Create(ctx context.Context, tx *gorm.DB, answer *models.Answer) error {
	return translateError(getDB(a.db, tx).WithContext(ctx).Create(answer).Error)
}

func (a AnswerPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := getDB(a.db, tx).WithContext(ctx).
		Preload("Challenge").
		First(&answer, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &answer, nil
}

// GetByChallengeAndAssessment returns the latest answer of a user to a
// challenge in an assessment.
func (a AnswerPostgreSQL) GetByChallengeAndAssessment(ctx context.Context, tx *gorm.DB, challengeID, assessmentID uint, userID string) (*models.Answer, error) {
	var answer models.Answer
	if err := getDB(a.db, tx).WithContext(ctx).
		Where("challenge_id = ? AND assessment_id = ? AND user_id = ?", challengeID, assessmentID, userID).
		Order("id DESC").
		First(&answer).Error; err != nil {
		return nil, translateError(err)
	}
	return &answer, nil
}

func (a AnswerPostgreSQL) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint, filters repositories.AnswerFilters) ([]*models.Answer, error) {
	var answers []*models.Answer

	query := getDB(a.db, tx).WithContext(ctx).Model(&models.Answer{}).Where("assessment_id = ?", assessmentID)
	if filters.Result != nil {
		query = query.Where("result = ?", *filters.Result)
	}
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	query = applyPaginationAndSort(query, "id", "asc", filters.Limit, filters.Offset)

	if err := query.Preload("Challenge").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (a AnswerPostgreSQL) UpdateResult(ctx context.Context, tx *gorm.DB, id uint, result models.AnswerResult, details datatypes.JSON) error {
	res := getDB(a.db, tx).WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"result":         result,
			"result_details": details,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
