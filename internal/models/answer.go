package models

import (
	"time"

	"gorm.io/datatypes"
)

type AnswerResult string

const (
	ResultPending   AnswerResult = "pending"
	ResultOK        AnswerResult = "ok"
	ResultKO        AnswerResult = "ko"
	ResultPartially AnswerResult = "partially"
	ResultAbandoned AnswerResult = "aband"
	ResultTimedOut  AnswerResult = "timedout"
)

// Answer is a user's encoded response to one challenge within an assessment.
type Answer struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	ChallengeID  uint   `json:"challenge_id" gorm:"not null;uniqueIndex:idx_answers_once"`
	AssessmentID uint   `json:"assessment_id" gorm:"not null;index;uniqueIndex:idx_answers_once"`
	UserID       string `json:"user_id" gorm:"not null;size:255;index;uniqueIndex:idx_answers_once"`

	Value  string       `json:"value" gorm:"type:text;not null"` // encoded answer or the abandonment sentinel
	Result AnswerResult `json:"result" gorm:"size:20;default:pending;index"`

	// Per-field correctness computed by the grader: {"field": true}
	ResultDetails datatypes.JSON `json:"result_details" gorm:"type:jsonb"`

	TimeSpent int       `json:"time_spent"` // seconds
	TimedOut  bool      `json:"timed_out" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Challenge Challenge `json:"-" gorm:"foreignKey:ChallengeID"`
}

func (Answer) TableName() string {
	return "answers"
}

// IsGraded reports whether the grader has recorded a result.
func (a *Answer) IsGraded() bool {
	return a.Result != "" && a.Result != ResultPending
}
