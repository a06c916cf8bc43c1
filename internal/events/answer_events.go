package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

// EventType represents the kinds of answer lifecycle events
type EventType string

const (
	EventAnswerSubmitted EventType = "answer.submitted"
	EventAnswerAbandoned EventType = "answer.abandoned"
	EventAnswerGraded    EventType = "answer.graded"
)

const (
	eventSource  = "challenge-service"
	eventVersion = "1.0"
)

// AnswerEvent is the envelope published for every answer lifecycle change
type AnswerEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Version   string         `json:"version"`
	Data      any            `json:"data"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// AnswerSubmittedEvent carries the encoded value so graders do not need to
// read it back from the database.
type AnswerSubmittedEvent struct {
	AnswerID      uint   `json:"answer_id"`
	ChallengeID   uint   `json:"challenge_id"`
	AssessmentID  uint   `json:"assessment_id"`
	UserID        string `json:"user_id"`
	ChallengeType string `json:"challenge_type"`
	Value         string `json:"value"`
	TimedOut      bool   `json:"timed_out"`
	TimeSpent     int    `json:"time_spent"`
}

type AnswerGradedEvent struct {
	AnswerID     uint            `json:"answer_id"`
	ChallengeID  uint            `json:"challenge_id"`
	AssessmentID uint            `json:"assessment_id"`
	UserID       string          `json:"user_id"`
	Result       string          `json:"result"`
	Correctness  map[string]bool `json:"correctness,omitempty"`
}

// NewAnswerSubmittedEvent builds answer.submitted, or answer.abandoned when
// abandoned is set.
func NewAnswerSubmittedEvent(data AnswerSubmittedEvent, abandoned bool) *AnswerEvent {
	eventType := EventAnswerSubmitted
	if abandoned {
		eventType = EventAnswerAbandoned
	}
	return newEvent(eventType, data)
}

func NewAnswerGradedEvent(data AnswerGradedEvent) *AnswerEvent {
	return newEvent(EventAnswerGraded, data)
}

func newEvent(eventType EventType, data any) *AnswerEvent {
	return &AnswerEvent{
		ID:        watermill.NewUUID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}
