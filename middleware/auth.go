package middleware

import (
	"net/http"
	"strings"
	"time"

	"restaurant-saas-api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Role defines allowed session roles in the system
type Role string

const (
	RoleAdmin      Role = "admin"      // tenant administrator, bound to one tenant
	RoleSuperAdmin Role = "superadmin" // platform operator
)

// Claims is the one typed session this system issues: a role, the tenant it
// is scoped to (empty for the platform operator), and an expiry. It replaces
// the two unrelated boolean flags the platform used to juggle.
type Claims struct {
	Role     Role   `json:"role"`
	TenantID string `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a session
func GenerateToken(role Role, tenantID string) (string, error) {
	claims := Claims{
		Role:     role,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects the session into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("role", string(claims.Role))
		c.Set("tenantID", claims.TenantID)
		c.Next()
	}
}

// RoleRequired enforces that the session has one of the allowed roles
func RoleRequired(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		sessionRole := Role(roleVal.(string))
		for _, r := range roles {
			if sessionRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetTenantID extracts the session's tenant scope from context
func GetTenantID(c *gin.Context) string {
	val, _ := c.Get("tenantID")
	s, _ := val.(string)
	return s
}

// GetRole extracts the session role from context
func GetRole(c *gin.Context) Role {
	val, _ := c.Get("role")
	s, _ := val.(string)
	return Role(s)
}
