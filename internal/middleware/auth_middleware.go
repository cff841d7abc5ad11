package middleware

import (
	"net/http"
	"strings"

	"infohub/internal/auth"
	"infohub/internal/policy"
	"infohub/internal/services"
	"infohub/pkg/logger"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
)

const viewerKey = "viewer"

// Viewer returns the policy viewer attached to the request context.
// Routes without auth middleware fall back to the anonymous viewer.
func Viewer(c *gin.Context) policy.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		return v.(policy.Viewer)
	}
	return policy.Anonymous()
}

func viewerFromToken(tokenString string, users *services.UserService) (policy.Viewer, bool) {
	claims, err := auth.ValidateToken(tokenString)
	if err != nil {
		logger.Log.Debug().Err(err).Msg("Token validation failed")
		return policy.Anonymous(), false
	}

	user, err := users.Get(claims.UserID)
	if err != nil {
		logger.Log.Warn().Err(err).Str("user_id", claims.UserID.String()).Msg("Token subject not found")
		return policy.Anonymous(), false
	}

	return policy.Authenticated(user.ID, user.IsAdmin), true
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.Replace(authHeader, "Bearer ", "", 1))
}

// OptionalAuth resolves a viewer when a valid token is present and
// proceeds anonymously otherwise. Public listing and search routes use
// this so owners see their private items in shared views.
func OptionalAuth(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if v, ok := viewerFromToken(token, users); ok {
				c.Set(viewerKey, v)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a valid token.
func RequireAuth(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Authorization header required", ""))
			c.Abort()
			return
		}

		v, ok := viewerFromToken(token, users)
		if !ok {
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Invalid token", ""))
			c.Abort()
			return
		}

		c.Set(viewerKey, v)
		c.Next()
	}
}
