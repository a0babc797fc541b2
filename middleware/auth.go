package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/johnaymann1/st-mary-gifts-api/models"
)

// RequireAuth validates the bearer token and stores the requester's identity
// and role in the request context. Nothing identity-related lives outside
// this context entry.
func RequireAuth(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, _ := claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)
	role := models.RoleUser
	if roleStr == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	c.Set("user_id", userID)
	c.Set("role", role)

	c.Next()
}

// RequireAdmin gates a route group on the admin role. Must run after
// RequireAuth.
func RequireAdmin(c *gin.Context) {
	roleVal, exists := c.Get("role")
	if !exists || roleVal.(models.Role) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// UserID pulls the authenticated user's id out of the gin context.
func UserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
