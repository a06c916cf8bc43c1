package validator

import (
	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/proposal"
)

// ChallengeValidator checks that a challenge's template and solution are
// consistent with its type.
type ChallengeValidator struct{}

func NewChallengeValidator() *ChallengeValidator {
	return &ChallengeValidator{}
}

// ValidateContent validates proposals and solution against the challenge type.
// Struct tags are expected to have been checked already.
func (v *ChallengeValidator) ValidateContent(c *models.Challenge) ValidationErrors {
	kind, err := c.Kind()
	if err != nil {
		return ValidationErrors{{Field: "type", Message: err.Error(), Value: c.Type, Rule: "challenge_kind"}}
	}

	switch kind {
	case proposal.SingleChoice, proposal.MultiChoice:
		return v.validateChoice(kind, c)
	case proposal.SingleText, proposal.MultiText:
		return v.validateText(kind, c)
	default:
		return nil
	}
}

func (v *ChallengeValidator) validateChoice(kind proposal.Kind, c *models.Challenge) ValidationErrors {
	var errs ValidationErrors

	proposals := proposal.ParseList(c.Proposals)
	if len(proposals) < 2 {
		errs = append(errs, ruleError("proposals", "proposal_list", len(proposals)))
	}

	selected := proposal.SelectedIndices(proposal.DecodeSelection(c.Solution))
	switch {
	case len(selected) == 0:
		errs = append(errs, ruleError("solution", "solution_block", c.Solution))
	case selected[len(selected)-1] > len(proposals):
		errs = append(errs, ruleError("solution", "solution_range", c.Solution))
	case kind == proposal.SingleChoice && len(selected) != 1:
		errs = append(errs, ruleError("solution", "solution_block", c.Solution))
	}
	return errs
}

func (v *ChallengeValidator) validateText(kind proposal.Kind, c *models.Challenge) ValidationErrors {
	var errs ValidationErrors

	fields := proposal.DeclaredFields(c.Proposals)
	if len(fields) == 0 || (kind == proposal.SingleText && len(fields) != 1) {
		errs = append(errs, ruleError("proposals", "proposal_fields", len(fields)))
	}
	for _, field := range fields {
		if !isFieldName(field) {
			errs = append(errs, ruleError("proposals", "field_name", field))
		}
	}

	solution, err := proposal.DecodeSolution(c.Solution)
	if err != nil {
		return append(errs, ruleError("solution", "solution_block", c.Solution))
	}
	for _, field := range fields {
		if len(solution.Variants(field)) == 0 {
			errs = append(errs, ruleError("solution", "solution_block", field))
		}
	}
	return errs
}

func ruleError(field, rule string, value interface{}) ValidationError {
	e := NewValidationErrorWithRule(field, ruleMessage(rule), rule, value)
	return *e
}
