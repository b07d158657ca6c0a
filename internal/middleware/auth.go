package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitalapp/vitalapp-api/internal/auth"
)

// Context keys set for downstream handlers once a token validates.
const (
	ContextClaims    = "authClaims"
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// DefaultBypassPrefixes is the allow-list of path prefixes exempt from token
// validation. It covers login/registration and, as currently configured, all
// role-scoped item endpoints as well, which leaves the filter inert for those
// paths.
var DefaultBypassPrefixes = []string{
	"/api/v1/auth/",
	"/api/v1/patient/",
	"/api/v1/patients/",
	"/api/v1/doctor/",
	"/api/v1/admin/",
}

// AuthGate validates bearer tokens on non-bypassed routes. Requests without
// an Authorization header pass through as anonymous; only a present but
// invalid bearer token is rejected.
func AuthGate(tokens *auth.TokenService, bypassPrefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range bypassPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokens.Validate(tokenStr)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			c.Set(ContextClaims, claims)
			c.Set(ContextUserID, claims.ID)
			c.Set(ContextUserEmail, claims.Email())
			c.Set(ContextUserRole, claims.Role)
		}

		c.Next()
	}
}
