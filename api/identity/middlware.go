// Package identity guards mutating maze routes with the session token issued
// at maze creation, so only a maze's creator can advance it.
package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/origin-shift-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextSessionClaims is the key used to store session claims in the Gin context.
	ContextSessionClaims = "sessionClaims"

	// MazeIDClaim is the claim naming the maze a token grants access to.
	MazeIDClaim = "mazeID"
)

// Authoriz validates the bearer token on incoming requests and attaches its
// claims to the context for the controllers to inspect.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		// Extract the token part.
		token := parts[1]

		// Validate the token.
		claims, err := ts.Decode(token)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach session claims to the request context for further use.
		c.Set(ContextSessionClaims, claims)
		c.Next()
	}
}

// GrantsMaze reports whether the claims attached by Authoriz grant access to
// the given maze.
func GrantsMaze(c *gin.Context, id uuid.UUID) bool {
	raw, exists := c.Get(ContextSessionClaims)
	if !exists {
		return false
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		return false
	}

	claimed, ok := claims[MazeIDClaim].(string)
	if !ok {
		return false
	}

	claimedID, err := uuid.Parse(claimed)
	return err == nil && claimedID == id
}
