package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewhub/internal/app"
	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/transport/http/response"
)

const (
	ContextUserKey  = "current_user"
	ContextTokenKey = "bearer_token"
)

// Auth resolves the Authorization header into a user. Every credential
// failure gets the same 401 body.
func Auth(resolver *app.IdentityResolver, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		user, err := resolver.Resolve(c.Request.Context(), header)
		if err != nil {
			if errors.Is(err, app.ErrUnauthorized) {
				response.Abort(c, http.StatusUnauthorized, response.CodeUnauthorized, app.ErrUnauthorized.Error())
				return
			}
			log.Error(c.Request.Context(), "resolve identity failed", "error", err)
			response.Abort(c, http.StatusInternalServerError, response.CodeInternalServer, "resolve identity failed")
			return
		}

		// Resolve already accepted the header, so this cannot fail.
		token, _ := app.BearerToken(header)
		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok && user != nil
}

func BearerToken(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}
