package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finbook-app/finbook_backend/internal/apperrors"
	"github.com/finbook-app/finbook_backend/internal/dto"
	"github.com/finbook-app/finbook_backend/internal/middleware"
)

// statusForError maps the service error sentinels onto HTTP statuses and a
// stable machine-readable code.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "DUPLICATE"
	case errors.Is(err, apperrors.ErrAlreadyVoided):
		return http.StatusConflict, "ALREADY_VOIDED"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, apperrors.ErrReferencedByLedger):
		return http.StatusConflict, "REFERENCED_BY_LEDGER"
	case errors.Is(err, apperrors.ErrUnbalanced):
		return http.StatusBadRequest, "UNBALANCED"
	case errors.Is(err, apperrors.ErrInvalidLine):
		return http.StatusBadRequest, "INVALID_LINE"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, apperrors.ErrLedgerInconsistency):
		return http.StatusInternalServerError, "LEDGER_INCONSISTENCY"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// respondWithError writes the mapped error response. Internal errors are not
// echoed back to the caller.
func respondWithError(c *gin.Context, err error) {
	status, code := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, dto.ErrorResponse{Code: code, Message: message})
}

// requestIdentity pulls the tenant and acting user the middleware resolved.
// A missing tenant means the middleware was not applied to this route.
func requestIdentity(c *gin.Context) (tenantID, userID string, ok bool) {
	tenantID, ok = middleware.GetTenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: "MISSING_TENANT", Message: "tenant not resolved for request"})
		return "", "", false
	}
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		userID = "system"
	}
	return tenantID, userID, true
}

// parseDateQuery reads a YYYY-MM-DD query parameter, returning fallback when
// the parameter is absent.
func parseDateQuery(c *gin.Context, name string, fallback time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return time.Parse(time.DateOnly, raw)
}
