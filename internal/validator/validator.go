package validator

import (
	"reflect"
	"strings"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/go-playground/validator/v10"
)

// Validator is the main validator instance that combines all validation types
type Validator struct {
	structValidator    *validator.Validate
	challengeValidator *ChallengeValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()

	// Register all custom validators once
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:    structValidator,
		challengeValidator: NewChallengeValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Validate performs complete validation: struct tags, then content rules for
// challenges.
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		return err
	}

	if challenge, ok := s.(*models.Challenge); ok {
		if errs := v.challengeValidator.ValidateContent(challenge); len(errs) > 0 {
			return errs
		}
	}
	return nil
}

// Challenge returns the challenge content validator
func (v *Validator) Challenge() *ChallengeValidator {
	return v.challengeValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("challenge_kind", validateChallengeKind)
	validate.RegisterValidation("answer_result", validateAnswerResult)
	validate.RegisterValidation("field_name", validateFieldName)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateChallengeKind(fl validator.FieldLevel) bool {
	_, err := proposal.ParseKind(fl.Field().String())
	return err == nil
}

func validateAnswerResult(fl validator.FieldLevel) bool {
	validResults := []models.AnswerResult{
		models.ResultOK,
		models.ResultKO,
		models.ResultPartially,
		models.ResultAbandoned,
		models.ResultTimedOut,
	}

	value := fl.Field().String()
	for _, validResult := range validResults {
		if string(validResult) == value {
			return true
		}
	}
	return false
}

// validateFieldName accepts names that can appear inside "${...}".
func validateFieldName(fl validator.FieldLevel) bool {
	return isFieldName(fl.Field().String())
}

func isFieldName(name string) bool {
	return strings.TrimSpace(name) != "" && !strings.ContainsAny(name, "#}\n")
}
