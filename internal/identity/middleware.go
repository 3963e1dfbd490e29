package identity

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// ContextKey is where Authenticate stores the caller's Identity on the gin
// context.
const ContextKey = "jobboard.identity"

// FromContext returns the Identity set by Authenticate, or nil.
func FromContext(c *gin.Context) *Identity {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil
	}
	ident, _ := v.(*Identity)
	return ident
}

// Authenticate resolves the bearer token into an Identity and attaches it to
// the request context. The first request of each uid is announced on the
// broadcaster as a SignedIn event.
func Authenticate(p Provider, b *Broadcaster) gin.HandlerFunc {
	var seen sync.Map
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		ident, err := p.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		c.Set(ContextKey, ident)
		if _, announced := seen.LoadOrStore(ident.UID, struct{}{}); !announced {
			b.Publish(Event{Type: SignedIn, Identity: ident})
		}
		c.Next()
	}
}

// RequireRole gates a route group to a single portal role.
func RequireRole(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := FromContext(c)
		if ident == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if ident.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
