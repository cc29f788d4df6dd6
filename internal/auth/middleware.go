package auth

import (
	"context"
	"net/http"
	"strings"

	dom "bookmarks/internal/domain"

	"github.com/gin-gonic/gin"
)

const contextKeyIdentity = "identity"

// Identity is the per-request authenticated account. It lives only in the
// current request's context.
type Identity struct {
	ID    int64
	Email string
}

// UserResolver looks up a live account for a verified token subject.
// Satisfied by repo.PGUserRepo.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (dom.User, error)
}

// IdentityFromContext returns the identity set by RequireAuth.
// The zero Identity means the middleware did not run.
func IdentityFromContext(c *gin.Context) Identity {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}
	}
	id, ok := v.(Identity)
	if !ok {
		return Identity{}
	}
	return id
}

// RequireAuth returns a middleware that validates the bearer token, resolves
// its subject to a live account and sets the Identity in context. Any failure
// responds with 401. Read-only against storage.
func RequireAuth(tokens *TokenManager, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, _, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		// A valid token may outlive its account; only a live row authenticates.
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyIdentity, Identity{ID: u.ID, Email: u.Email})
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
