package services

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SAP-F-2025/challenge-service/internal/proposal"
)

// EncodeAnswer turns a submitted answer into its stored state for a
// challenge of the given kind and template. Request shapes that do not fit
// the kind are rejected with ErrKindMismatch; field names the template does
// not declare are rejected with ErrUnknownField.
func EncodeAnswer(kind proposal.Kind, template string, req *SubmitAnswerRequest) (proposal.AnswerState, error) {
	if req.Abandoned {
		return proposal.Abandoned(), nil
	}

	switch kind {
	case proposal.SingleChoice, proposal.MultiChoice:
		if len(req.Fields) > 0 || req.Text != "" {
			return proposal.AnswerState{}, fmt.Errorf("%w: %s expects selected proposals", ErrKindMismatch, kind)
		}
		return encodeChoice(kind, proposal.ParseList(template), req.Selected)

	case proposal.SingleText:
		if len(req.Selected) > 0 || len(req.Fields) > 0 {
			return proposal.AnswerState{}, fmt.Errorf("%w: %s expects a text answer", ErrKindMismatch, kind)
		}
		if strings.TrimSpace(req.Text) == "" {
			return proposal.AnswerState{}, ValidationErrors{*NewValidationError("text", "is required unless the challenge is abandoned", req.Text)}
		}
		if req.Text == proposal.AbandonedSentinel {
			return proposal.AnswerState{}, ValidationErrors{*NewValidationError("text", "is reserved", req.Text)}
		}
		return proposal.Given(req.Text), nil

	case proposal.MultiText:
		if len(req.Selected) > 0 || req.Text != "" {
			return proposal.AnswerState{}, fmt.Errorf("%w: %s expects named fields", ErrKindMismatch, kind)
		}
		return encodeFields(proposal.DeclaredFields(template), req.Fields)

	case proposal.ConfirmationOnly:
		if len(req.Selected) > 0 || len(req.Fields) > 0 || req.Text != "" {
			return proposal.AnswerState{}, fmt.Errorf("%w: %s takes no answer content", ErrKindMismatch, kind)
		}
		return proposal.Given(""), nil

	default:
		return proposal.AnswerState{}, fmt.Errorf("%w: unsupported challenge type %s", ErrKindMismatch, kind)
	}
}

func encodeChoice(kind proposal.Kind, proposals []string, selected []int) (proposal.AnswerState, error) {
	if len(selected) == 0 {
		return proposal.AnswerState{}, ValidationErrors{*NewValidationError("selected", "at least one proposal must be selected unless the challenge is abandoned", selected)}
	}

	for _, index := range selected {
		if index < 1 || index > len(proposals) {
			return proposal.AnswerState{}, ValidationErrors{*NewValidationError("selected", fmt.Sprintf("must be between 1 and %d", len(proposals)), index)}
		}
	}

	unique := slices.Clone(selected)
	slices.Sort(unique)
	unique = slices.Compact(unique)
	if kind == proposal.SingleChoice && len(unique) != 1 {
		return proposal.AnswerState{}, ValidationErrors{*NewValidationError("selected", "exactly one proposal must be selected", selected)}
	}

	return proposal.Given(proposal.EncodeSelection(unique)), nil
}

// encodeFields orders the given values by declaration; declared fields left
// out are stored empty.
func encodeFields(declared []string, given map[string]string) (proposal.AnswerState, error) {
	var unknown []string
	for name := range given {
		if !slices.Contains(declared, name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return proposal.AnswerState{}, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
	}

	fields := proposal.NewFieldMap()
	for _, name := range declared {
		fields.Set(name, given[name])
	}
	return proposal.Given(proposal.EncodeFields(fields)), nil
}
