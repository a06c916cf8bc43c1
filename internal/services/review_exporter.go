package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const reviewSheet = "Review"

var reviewHeaders = []string{
	"Answer ID", "User ID", "Challenge ID", "Type", "Result", "Answer",
	"Label", "Given", "Checked", "Solution", "Outcome", "Open",
}

type reviewExporter struct {
	reviews ReviewService
	logger  *slog.Logger
}

func NewReviewExporter(reviews ReviewService, logger *slog.Logger) ReviewExporter {
	return &reviewExporter{reviews: reviews, logger: logger}
}

// ExportAssessment writes one row per comparison record of every answer in
// the assessment. Answers without records, such as confirmations, get a
// single row. Exporting requires the grader role.
func (e *reviewExporter) ExportAssessment(ctx context.Context, assessmentID uint, user *models.User) ([]byte, error) {
	if !user.HasRole(models.RoleGrader) {
		return nil, NewPermissionError(userIDOf(user), assessmentID, "assessment", "export_review", "grader role required")
	}

	reviews, err := e.allReviews(ctx, assessmentID, user)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reviewSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := writeRow(f, 1, toCells(reviewHeaders)); err != nil {
		return nil, err
	}

	row := 2
	for _, review := range reviews {
		for _, cells := range reviewRows(review) {
			if err := writeRow(f, row, cells); err != nil {
				return nil, err
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	e.logger.InfoContext(ctx, "Exported assessment review",
		"assessment_id", assessmentID,
		"answers", len(reviews),
		"rows", row-2)
	return buf.Bytes(), nil
}

// allReviews pages through the assessment until a short page comes back.
func (e *reviewExporter) allReviews(ctx context.Context, assessmentID uint, user *models.User) ([]*models.Review, error) {
	var reviews []*models.Review
	for offset := 0; ; offset += repositories.MaxPageSize {
		page, err := e.reviews.ReviewAssessment(ctx, assessmentID, repositories.AnswerFilters{
			Limit:  repositories.MaxPageSize,
			Offset: offset,
		}, user)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, page...)
		if len(page) < repositories.MaxPageSize {
			return reviews, nil
		}
	}
}

func reviewRows(review *models.Review) [][]interface{} {
	prefix := []interface{}{
		review.AnswerID,
		review.UserID,
		review.ChallengeID,
		review.Kind.String(),
		string(review.Result),
		review.DisplayValue,
	}

	if len(review.Comparisons) == 0 {
		return [][]interface{}{prefix}
	}

	rows := make([][]interface{}, 0, len(review.Comparisons))
	for _, c := range review.Comparisons {
		row := append([]interface{}{}, prefix...)
		row = append(row, c.Label, c.Given, c.Checked, c.SolutionDisplay, c.Outcome.String(), c.IsOpen)
		rows = append(rows, row)
	}
	return rows
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func writeRow(f *excelize.File, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(reviewSheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
