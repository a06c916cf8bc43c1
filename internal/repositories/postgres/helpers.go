package postgres

import (
	"errors"
	"strings"

	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"gorm.io/gorm"
)

var sortableColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"type":       true,
}

func getDB(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// applyPaginationAndSort applies ordering and paging; unknown columns fall back
// to id.
func applyPaginationAndSort(query *gorm.DB, sortBy, sortOrder string, limit, offset int) *gorm.DB {
	if !sortableColumns[sortBy] {
		sortBy = "id"
	}
	if strings.ToLower(sortOrder) == "desc" {
		query = query.Order(sortBy + " DESC")
	} else {
		query = query.Order(sortBy + " ASC")
	}

	if limit <= 0 || limit > repositories.MaxPageSize {
		limit = repositories.MaxPageSize
	}
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicate
	}
	return err
}
