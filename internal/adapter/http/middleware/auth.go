package middleware

import (
	"net/http"
	"strings"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"
	"portfolio_studio/pkg"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys set by RequireUser for downstream handlers.
	ContextUserID = "auth_user_id"
	ContextRoles  = "auth_roles"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// RequireUser rejects requests without a valid back-office token and stores
// the caller's identity and roles on the gin context.
func RequireUser(tokens interfaces.ISessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		userID, roles, err := tokens.ParseUserToken(token)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextRoles, roles)
		c.Next()
	}
}

// RequireRole gates a route group to callers holding at least one of the
// given roles. Root passes every gate. Must run after RequireUser.
func RequireRole(wanted ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, ok := c.Get(ContextRoles)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		held, _ := roles.([]entities.Role)
		if !hasAnyRole(held, wanted) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func hasAnyRole(held []entities.Role, wanted []entities.Role) bool {
	for _, have := range held {
		if have == entities.RoleRoot {
			return true
		}
		for _, want := range wanted {
			if have == want {
				return true
			}
		}
	}
	return false
}

func extractBearer(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}
