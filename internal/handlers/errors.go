package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rooseveltjobs/jobboard/internal/apperr"
)

// respondError maps service error kinds onto HTTP statuses. Every error is
// surfaced to the caller; nothing is swallowed.
func respondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	var dref *apperr.DanglingReference
	var serr *apperr.StoreError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrPostingNotFound),
		errors.Is(err, apperr.ErrEmployerNotFound),
		errors.Is(err, apperr.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &dref):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &serr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
