package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// Token is minimal interface for a verified token that can expose claims
type Token interface {
	Claims(v interface{}) error
}

// Verifier is the minimal interface the middleware depends on
type Verifier interface {
	Verify(ctx context.Context, raw string) (Token, error)
}

// IdentityMiddleware verifies a Bearer token when one is present and attaches
// its claims to the request context under "claims". Requests without a token
// (or with an invalid one) pass through unauthenticated; handlers that require
// an identity enforce that precondition themselves.
func IdentityMiddleware(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if ver == nil || !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		tok, err := ver.Verify(c.Request.Context(), raw)
		if err != nil {
			c.Next()
			return
		}

		var claims map[string]interface{}
		if err := tok.Claims(&claims); err != nil {
			c.Next()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
