package models

import "github.com/SAP-F-2025/challenge-service/internal/proposal"

// Review is the correction screen of one answer.
type Review struct {
	AnswerID     uint                  `json:"answer_id"`
	ChallengeID  uint                  `json:"challenge_id"`
	AssessmentID uint                  `json:"assessment_id"`
	UserID       string                `json:"user_id"`
	Kind         proposal.Kind         `json:"kind"`
	Instruction  string                `json:"instruction"`
	Result       AnswerResult          `json:"result"`
	Abandoned    bool                  `json:"abandoned"`
	DisplayValue string                `json:"display_value"` // the answer as shown, "no answer given" when skipped
	Rendering    proposal.Rendering    `json:"rendering"`
	Comparisons  []proposal.Comparison `json:"comparisons"`
}
