package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mesadeayuda/helpdesk-service/internal/access"
	"github.com/mesadeayuda/helpdesk-service/internal/model"
	"github.com/mesadeayuda/helpdesk-service/internal/session"
)

const sessionKey = "session"

// SessionMiddleware resolves the bearer token and stores the session in the
// request context. Requests without a valid session get 401 plus the login
// redirect, carrying the path they were after.
func SessionMiddleware(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		s, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			decision := access.ResolveUnauthenticated(requestedPath(c))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":       "authentication required",
				"redirect_to": decision.RedirectTo,
				"from":        decision.From,
			})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequireRole rejects sessions whose role is not in the allowed set.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		s := sessionFrom(c)
		if s == nil || !allowed[s.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// requestedPath prefers the frontend route passed in ?path= (the access
// endpoint) over the API path itself.
func requestedPath(c *gin.Context) string {
	if p := c.Query("path"); p != "" {
		return p
	}
	return c.Request.URL.Path
}
