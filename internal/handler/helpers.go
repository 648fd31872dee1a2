package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/bensedjadrafik-ux/vitube-app/internal/middleware"
	appErr "github.com/bensedjadrafik-ux/vitube-app/internal/pkg/errors"
	"github.com/bensedjadrafik-ux/vitube-app/internal/pkg/response"
)

func getUserID(c *gin.Context) string {
	value, _ := c.Get(middleware.ContextUserIDKey)
	userID, _ := value.(string)
	return userID
}

// handleError maps service errors onto the wire contract. Anything not
// in the taxonomy is a server failure: it is logged with full detail
// and surfaced as a generic message.
func handleError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, http.StatusBadRequest, "missing or invalid fields")
	case errors.Is(err, appErr.ErrDuplicateEmail):
		response.Error(c, http.StatusBadRequest, "email already registered")
	case errors.Is(err, appErr.ErrInvalidCredentials):
		response.Error(c, http.StatusBadRequest, "invalid email or password")
	case errors.Is(err, appErr.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found")
	default:
		requestID, _ := c.Get(middleware.ContextRequestIDKey)
		logutil.GetLogger(c.Request.Context()).Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "server error")
	}
}
