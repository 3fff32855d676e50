package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"talentai-backend/config"
	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		// Fetch fresh user data from the DB for the authoritative role;
		// the JWT role claim may be stale
		user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		role := user.Role
		if role == "" {
			role = domain.RoleCandidate // Fallback
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		// Usecases read identity from the request context with typed keys
		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, sub)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole guards a route group to the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(string(domain.KeyUserRole))
		for _, role := range roles {
			if current == role {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
		c.Abort()
	}
}
