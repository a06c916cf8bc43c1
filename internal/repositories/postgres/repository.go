package postgres

import (
	"context"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	db        *gorm.DB
	challenge repositories.ChallengeRepository
	answer    repositories.AnswerRepository
}

// NewRepository returns the gorm-backed repository set.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		db:        db,
		challenge: NewChallengePostgreSQL(db),
		answer:    NewAnswerPostgreSQL(db),
	}
}

func (r *repository) Challenge() repositories.ChallengeRepository { return r.challenge }
func (r *repository) Answer() repositories.AnswerRepository       { return r.answer }

func (r *repository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// AutoMigrate creates or updates the tables owned by this service.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Challenge{}, &models.Answer{})
}
