package httpserver

import (
	"errors"
	"net/http"

	"customer-service/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{StatusCode: status, Message: message})
}

// writeServiceError maps repository and service errors onto status codes.
// Anything that is not a known sentinel is logged and reported as a 500.
func writeServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		logger.Warn("invalid customer id", zap.String("op", op), zap.String("id", c.Param("id")))
		writeError(c, http.StatusBadRequest, "invalid customer id")
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn("customer not found", zap.String("op", op), zap.String("id", c.Param("id")))
		writeError(c, http.StatusNotFound, "customer not found")
	default:
		logger.Error("customer operation failed", zap.String("op", op), zap.Error(err))
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
