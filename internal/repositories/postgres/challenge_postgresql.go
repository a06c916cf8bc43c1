package postgres

import (
	"context"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"gorm.io/gorm"
)

type ChallengePostgreSQL struct {
	db *gorm.DB
}

func NewChallengePostgreSQL(db *gorm.DB) repositories.ChallengeRepository {
	return &ChallengePostgreSQL{db: db}
}

func (c ChallengePostgreSQL) Create(ctx context.Context, tx *gorm.DB, challenge *models.Challenge) error {
	return getDB(c.db, tx).WithContext(ctx).Create(challenge).Error
}

func (c ChallengePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := getDB(c.db, tx).WithContext(ctx).First(&challenge, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &challenge, nil
}

func (c ChallengePostgreSQL) Update(ctx context.Context, tx *gorm.DB, challenge *models.Challenge) error {
	return getDB(c.db, tx).WithContext(ctx).Save(challenge).Error
}

func (c ChallengePostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error) {
	var challenges []*models.Challenge
	var total int64

	// apply filter first
	query := getDB(c.db, tx).WithContext(ctx).Model(&models.Challenge{})
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.CreatedBy != nil {
		query = query.Where("created_by = ?", *filters.CreatedBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then apply pagination and sorting
	query = applyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)
	if err := query.Find(&challenges).Error; err != nil {
		return nil, 0, err
	}

	return challenges, total, nil
}

func (c ChallengePostgreSQL) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]*models.Challenge, error) {
	result := make(map[uint]*models.Challenge, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var challenges []models.Challenge
	if err := getDB(c.db, tx).WithContext(ctx).Where("id IN ?", ids).Find(&challenges).Error; err != nil {
		return nil, err
	}
	for i := range challenges {
		result[challenges[i].ID] = &challenges[i]
	}
	return result, nil
}
