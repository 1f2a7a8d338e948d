package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hardware-store/models"
	"hardware-store/session"
	"hardware-store/utils"
)

// AuthMiddleware validates the bearer token and resolves the live
// session behind it. The session user lands in the context under
// "user" for handlers downstream.
func AuthMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if !ok {
			c.Abort()
			return
		}

		sess, err := store.GetSession(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Session expired, please log in again",
			})
			c.Abort()
			return
		}

		c.Set("user_id", sess.User.ID)
		c.Set("user_role", sess.User.Role)
		c.Set("session_id", sess.ID)
		c.Set("user", sess.User)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves a session when a token is present
// but lets anonymous requests through; the rental booking flow needs
// to see both.
func OptionalAuthMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.Next()
			return
		}

		sess, err := store.GetSession(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", sess.User.ID)
		c.Set("user_role", sess.User.Role)
		c.Set("session_id", sess.ID)
		c.Set("user", sess.User)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerClaims(c *gin.Context) (*utils.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Authorization header required",
		})
		return nil, false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Invalid authorization header format",
		})
		return nil, false
	}

	claims, err := utils.ValidateToken(tokenParts[1])
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Invalid or expired token",
			Error:   err.Error(),
		})
		return nil, false
	}
	return claims, true
}

// CurrentUser pulls the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
