package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realty-service/internal/apperr"
)

// writeError maps service/repository errors onto HTTP statuses:
// ValidationError → 400, ErrNotFound → 404, slug conflict → 409,
// anything else → 500.
func writeError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason, "field": ve.Field})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrSlugConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "could not assign a unique slug, retry the request"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
