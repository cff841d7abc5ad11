package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"infohub/internal/apperrors"
	"infohub/internal/repositories"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err), errors.Is(err, apperrors.ErrAlreadyAuthenticated):
		status = http.StatusBadRequest
	case apperrors.IsPermission(err):
		status = http.StatusForbidden
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, responses.NewErrorResponse(message, err.Error()))
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid ID format", c.Param(param)))
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = queryInt(c, "limit", repositories.DefaultLimit)
	offset = queryInt(c, "offset", repositories.DefaultOffset)
	return limit, offset
}

func queryInt(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return n
}
