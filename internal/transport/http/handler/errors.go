package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewhub/internal/app"
	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/transport/http/middleware"
	"reviewhub/internal/transport/http/response"
)

// writeError maps service errors onto status codes. Anything that is not one
// of the known kinds is logged and reported as a generic 500 with fallback.
func writeError(c *gin.Context, log logging.Logger, err error, fallback string) {
	status, code := classify(err)
	if status == http.StatusInternalServerError {
		log.Error(c.Request.Context(), fallback, "error", err, "path", c.FullPath())
		response.Error(c, status, code, fallback)
		return
	}
	response.Error(c, status, code, err.Error())
}

func classify(err error) (int, int) {
	switch {
	case errors.Is(err, app.ErrInvalidRating):
		return http.StatusBadRequest, response.CodeInvalidRating
	case errors.Is(err, app.ErrValidation):
		return http.StatusBadRequest, response.CodeBadRequest
	case errors.Is(err, app.ErrInvalidCredentials):
		return http.StatusUnauthorized, response.CodeInvalidCredentials
	case errors.Is(err, app.ErrUnauthorized):
		return http.StatusUnauthorized, response.CodeUnauthorized
	case errors.Is(err, app.ErrNotOwner):
		return http.StatusForbidden, response.CodeNotOwner
	case errors.Is(err, app.ErrForbidden):
		return http.StatusForbidden, response.CodeForbidden
	case errors.Is(err, app.ErrItemNotFound):
		return http.StatusNotFound, response.CodeItemNotFound
	case errors.Is(err, app.ErrReviewNotFound):
		return http.StatusNotFound, response.CodeReviewNotFound
	case errors.Is(err, app.ErrCommentNotFound):
		return http.StatusNotFound, response.CodeCommentNotFound
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound, response.CodeNotFound
	case errors.Is(err, app.ErrUsernameExists):
		return http.StatusConflict, response.CodeUsernameExists
	case errors.Is(err, app.ErrReviewExists):
		return http.StatusConflict, response.CodeReviewExists
	case errors.Is(err, app.ErrCommentExists):
		return http.StatusConflict, response.CodeCommentExists
	case errors.Is(err, app.ErrConflict):
		return http.StatusConflict, response.CodeConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, response.CodeInternalServer
	default:
		return http.StatusInternalServerError, response.CodeInternalServer
	}
}

func invalidPayload(c *gin.Context) {
	response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
}

// currentUser is only nil when a route forgot the auth middleware.
func currentUser(c *gin.Context) *model.User {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, app.ErrUnauthorized.Error())
		return nil
	}
	return user
}
