package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassification(t *testing.T) {
	_, decodeErr := proposal.DecodeSolution("a: [")
	require.Error(t, decodeErr)

	tests := []struct {
		name   string
		err    error
		status string
		level  slog.Level
	}{
		{"success", nil, "success", slog.LevelInfo},
		{"validation", ValidationErrors{{Field: "text"}}, "validation_error", slog.LevelWarn},
		{"kind mismatch", fmt.Errorf("%w: QCM", ErrKindMismatch), "validation_error", slog.LevelWarn},
		{"business rule", NewBusinessRuleError("timer", "expired", nil), "validation_error", slog.LevelWarn},
		{"not found", fmt.Errorf("wrapped: %w", ErrAnswerNotFound), "not_found", slog.LevelInfo},
		{"conflict", ErrAnswerExists, "conflict", slog.LevelWarn},
		{"archived challenge", challengeClosedError(6), "conflict", slog.LevelWarn},
		{"permission", NewPermissionError("user-1", 3, "answer", "review", "not the owner"), "permission_denied", slog.LevelWarn},
		{"decode", fmt.Errorf("answer 3: %w", decodeErr), "decode_error", slog.LevelError},
		{"other", errors.New("boom"), "error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, level := classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.level, level)
		})
	}

	assert.True(t, IsUnprocessable(decodeErr))
	assert.True(t, IsUnprocessable(ErrSolutionMissing))
	assert.False(t, IsUnprocessable(ErrChallengeNotFound))
	assert.False(t, IsUnprocessable(challengeClosedError(6)))
	assert.True(t, IsBusinessRule(challengeClosedError(6)))
}

func TestServiceLogger_LogOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewServiceLogger(slog.New(slog.NewJSONHandler(&buf, nil)), LogConfig{Service: "challenge-service", Component: "review"})

	_, decodeErr := proposal.DecodeFields("a: [b]", []string{"a"})
	ctx := WithRequestID(context.Background(), "req-42")
	logger.LogOperation(ctx, "review_answer", "user-1", 3, "answer", time.Millisecond, decodeErr)

	out := buf.String()
	assert.Contains(t, out, `"status":"decode_error"`)
	assert.Contains(t, out, `"decode_target":"answer"`)
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"component":"review"`)
}

func TestServiceLogger_LogValidationError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewServiceLogger(slog.New(slog.NewJSONHandler(&buf, nil)), LogConfig{Service: "challenge-service", Component: "answer"})

	logger.logRejected(context.Background(), "submit_answer", "user-1", errors.New("not a validation error"))
	assert.Empty(t, buf.String())

	logger.logRejected(context.Background(), "submit_answer", "user-1", ValidationErrors{
		{Field: "assessment_id", Message: "is required", Rule: "required"},
	})

	out := buf.String()
	assert.Contains(t, out, `"msg":"Validation failed"`)
	assert.Contains(t, out, `"error_count":1`)
	assert.Contains(t, out, `"field":"assessment_id"`)
	assert.Contains(t, out, `"rule":"required"`)
}
