package handlers

import (
	"net/http"
	"strconv"

	apperrors "equipment-management-backend/internal/errors"
	"equipment-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// statusFor maps a service error onto an HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err), apperrors.IsOperation(err), apperrors.IsIntegrity(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error with its mapped status. Unexpected errors are
// logged and hidden behind the given message.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error(message)
		c.JSON(status, gin.H{"error": message, "details": err.Error()})
		return
	}
	if apperrors.IsIntegrity(err) {
		logger.WithContext(c.Request.Context()).WithError(err).Error("data integrity violation")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseID reads a UUID path parameter, writing a 400 when it is malformed
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, writing a 400 when it is malformed
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}

// pagination reads page and page_size; the service clamps the values
func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
