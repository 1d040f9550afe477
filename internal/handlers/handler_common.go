package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/apperrors"
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/middleware"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses. Internal errors are
// logged but never leaked to the client verbatim.
func respondError(c *gin.Context, err error, publicMsg string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if logger != nil {
			logger.Error(publicMsg, slog.String("error", err.Error()))
		}
		c.JSON(status, ErrorResponse{Error: publicMsg})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
