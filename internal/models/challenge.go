package models

import (
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"gorm.io/gorm"
)

type ChallengeStatus string

const (
	ChallengeDraft     ChallengeStatus = "draft"
	ChallengeValidated ChallengeStatus = "validated"
	ChallengeArchived  ChallengeStatus = "archived"
)

type Challenge struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Type        string          `json:"type" gorm:"not null;size:20;index" validate:"required,challenge_kind"`
	Instruction string          `json:"instruction" gorm:"type:text;not null" validate:"required,max=5000"`
	Proposals   string          `json:"proposals" gorm:"type:text"` // list or placeholder template, depending on Type
	Solution    string          `json:"solution,omitempty" gorm:"type:text"`
	Timer       *int            `json:"timer" validate:"omitempty,min=5,max=3600"` // seconds
	Status      ChallengeStatus `json:"status" gorm:"default:draft;index" validate:"omitempty,oneof=draft validated archived"`

	// Metadata
	CreatedBy string         `json:"created_by" gorm:"size:255;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// Kind parses the stored type code.
func (c *Challenge) Kind() (proposal.Kind, error) {
	return proposal.ParseKind(c.Type)
}

// IsTimed reports whether answers are subject to a timer.
func (c *Challenge) IsTimed() bool {
	return c.Timer != nil && *c.Timer > 0
}
