package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SAP-F-2025/challenge-service/internal/models"
	"github.com/SAP-F-2025/challenge-service/internal/proposal"
	"github.com/SAP-F-2025/challenge-service/internal/repositories"
	"github.com/SAP-F-2025/challenge-service/internal/services"
	"github.com/gin-gonic/gin"
)

// parseIDParam writes a 400 and returns 0 when the path parameter is not a
// positive integer.
func (h *BaseHandler) parseIDParam(c *gin.Context, param string) uint {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		details := "ID must be a positive integer"
		if err != nil {
			details = err.Error()
		}
		h.RespondWithError(c, http.StatusBadRequest, "Invalid "+param, nil, details)
		return 0
	}
	return uint(id)
}

func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	value, err := strconv.Atoi(c.Query(param))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}

// parsePage reads page and size, clamping size to what the repositories
// return at most.
func parsePage(c *gin.Context, defaultSize int) (page, size int) {
	page = parseIntQuery(c, "page", 1)
	size = min(parseIntQuery(c, "size", defaultSize), repositories.MaxPageSize)
	return page, size
}

// currentUser returns the authenticated user or writes a 401.
func (h *BaseHandler) currentUser(c *gin.Context) (*models.User, bool) {
	user, _ := c.Get(userKey)
	if u, ok := user.(*models.User); ok && u.ID != "" {
		return u, true
	}
	h.RespondWithError(c, http.StatusUnauthorized, "User not authenticated", nil)
	return nil, false
}

func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, validationErrors)
		return
	}

	var businessRuleError *services.BusinessRuleError
	if errors.As(err, &businessRuleError) {
		status := http.StatusUnprocessableEntity
		if services.IsConflict(err) {
			status = http.StatusConflict
		}
		h.RespondWithError(c, status, businessRuleError.Message, err, map[string]interface{}{
			"rule":    businessRuleError.Rule,
			"context": businessRuleError.Context,
		})
		return
	}

	var permissionError *services.PermissionError
	if errors.As(err, &permissionError) {
		h.RespondWithError(c, http.StatusForbidden, "Access denied", err, map[string]interface{}{
			"resource": permissionError.Resource,
			"action":   permissionError.Action,
			"reason":   permissionError.Reason,
		})
		return
	}

	var decodeError *proposal.DecodeError
	if errors.As(err, &decodeError) {
		h.RespondWithError(c, http.StatusUnprocessableEntity, "Stored "+decodeError.What+" cannot be decoded", err, map[string]interface{}{
			"raw": decodeError.Raw,
		})
		return
	}

	switch {
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, err.Error(), err)
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, err.Error())
	case services.IsConflict(err):
		h.RespondWithError(c, http.StatusConflict, err.Error(), err)
	case services.IsUnprocessable(err):
		h.RespondWithError(c, http.StatusUnprocessableEntity, err.Error(), err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
