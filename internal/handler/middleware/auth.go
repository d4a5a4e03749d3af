package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rentafleet/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator is satisfied by jwt.Service.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, jwt.Role, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxOperatorIDKey   = "operator_id"
	ctxOperatorRoleKey = "operator_role"
)

var roleHierarchy = map[jwt.Role]int{
	jwt.RoleOperator: 1,
	jwt.RoleAdmin:    2,
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		operatorID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOperatorIDKey, operatorID)
		c.Set(ctxOperatorRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"operator_id": operatorID.String(),
			"role":        string(role),
		})
		c.Next()
	}
}

func hasMinimumRole(role, minRole jwt.Role) bool {
	level, exists := roleHierarchy[role]
	minLevel, minExists := roleHierarchy[minRole]
	return exists && minExists && level >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole jwt.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetOperatorRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetOperatorID(c *gin.Context) (uuid.UUID, bool) {
	operatorID, exists := c.Get(ctxOperatorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := operatorID.(uuid.UUID)
	return id, ok
}

func GetOperatorRole(c *gin.Context) (jwt.Role, bool) {
	operatorRole, exists := c.Get(ctxOperatorRoleKey)
	if !exists {
		return "", false
	}

	role, ok := operatorRole.(jwt.Role)
	return role, ok
}
