package middleware

import (
	"github.com/gin-gonic/gin"

	"fintrack-be/internal/auth"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/session"
)

// SessionMiddleware builds the per-request auth context from the session
// cookie and attaches it to the request context, where the GraphQL
// resolvers pick it up. Anonymous requests pass through untouched.
func SessionMiddleware(sessions session.Store, users repository.UserRepository, cookie auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		actx := auth.NewContext(c.Writer, c.Request, sessions, users, cookie)
		actx.Resolve(c.Request.Context())

		c.Request = c.Request.WithContext(auth.WithContext(c.Request.Context(), actx))
		c.Next()
	}
}
