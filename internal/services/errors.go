package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/challenge-service/internal/errors"
	"github.com/SAP-F-2025/challenge-service/internal/proposal"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")

	// Challenge specific errors
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrChallengeClosed   = errors.New("challenge is archived and no longer accepts answers")
	ErrSolutionMissing   = errors.New("challenge has no solution to review against")

	// Answer specific errors
	ErrAnswerNotFound = errors.New("answer not found")
	ErrAnswerExists   = errors.New("answer already submitted for this challenge")
	ErrKindMismatch   = errors.New("answer shape does not match challenge type")
	ErrUnknownField   = errors.New("answer names a field the challenge does not declare")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
	// Err is an optional sentinel the violation also matches with errors.Is.
	Err error `json:"-"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

func (bre *BusinessRuleError) Unwrap() error {
	return bre.Err
}

type PermissionError struct {
	UserID     string `json:"user_id"`
	ResourceID uint   `json:"resource_id"`
	Resource   string `json:"resource"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
}

func (pe *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %s cannot %s %s %d - %s",
		pe.UserID, pe.Action, pe.Resource, pe.ResourceID, pe.Reason)
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

func NewPermissionError(userID string, resourceID uint, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:     userID,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
		Reason:     reason,
	}
}

// challengeClosedError reports an answer to an archived challenge. It matches
// ErrChallengeClosed.
func challengeClosedError(challengeID uint) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    "challenge_archived",
		Message: ErrChallengeClosed.Error(),
		Context: map[string]interface{}{"challenge_id": challengeID},
		Err:     ErrChallengeClosed,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrChallengeNotFound) ||
		errors.Is(err, ErrAnswerNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrKindMismatch) ||
		errors.Is(err, ErrUnknownField) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}

// IsPermission checks if error represents a denied access
func IsPermission(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrAnswerExists) ||
		errors.Is(err, ErrChallengeClosed)
}

// IsDecodeError reports whether stored content could not be decoded.
func IsDecodeError(err error) bool {
	var de *proposal.DecodeError
	return errors.As(err, &de)
}

// IsUnprocessable reports whether the stored material cannot produce the
// requested view even though the request itself is well formed.
func IsUnprocessable(err error) bool {
	return IsDecodeError(err) || errors.Is(err, ErrSolutionMissing) || (IsBusinessRule(err) && !IsConflict(err))
}
