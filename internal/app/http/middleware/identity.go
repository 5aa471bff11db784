package middleware

import (
	"github.com/gin-gonic/gin"

	"maintsvc/internal/domain/authz"
	"maintsvc/internal/domain/user"
)

const subjectKey = "authz.subject"

// Identity resolves the caller from the gateway-provided headers into an
// explicit request-scoped subject. Authentication itself happens upstream;
// by the time a request reaches this service the headers are trusted.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(subjectKey, authz.Subject{
			UserID: c.GetHeader("X-User-ID"),
			Role:   user.Role(c.GetHeader("X-User-Role")),
		})
		c.Next()
	}
}

func SubjectFrom(c *gin.Context) authz.Subject {
	if v, ok := c.Get(subjectKey); ok {
		if sub, ok := v.(authz.Subject); ok {
			return sub
		}
	}
	return authz.Subject{}
}
