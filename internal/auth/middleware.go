package auth

import (
	"errors"
	"net/http"
	"strings"

	dom "Tasker/internal/domain"
	"Tasker/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

const contextKeyUser = "current_user"

// CurrentUser returns the authenticated user set by RequireAuth.
func CurrentUser(c *gin.Context) (dom.User, bool) {
	v, ok := c.Get(contextKeyUser)
	if !ok {
		return dom.User{}, false
	}
	u, ok := v.(dom.User)
	return u, ok
}

// RequireAuth returns a middleware that authenticates the request from
// its Authorization bearer token and stores the resolved user in
// context. Per-request state machine: no token -> 401; token that fails
// validation for any reason, or whose subject no longer exists -> one
// generic 401; user store failure -> 500; disabled account -> 400;
// otherwise the handler runs with the user attached.
func RequireAuth(tokens *TokenService, users repo.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "not authenticated")
			return
		}
		username, err := tokens.Validate(raw)
		if err != nil {
			// Expired, tampered and malformed all look the same
			// from outside.
			unauthorized(c, "could not validate credentials")
			return
		}
		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				unauthorized(c, "could not validate credentials")
				return
			}
			// Store failure, not a credentials problem.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
			return
		}
		if user.Disabled {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "inactive user"})
			return
		}
		c.Set(contextKeyUser, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
