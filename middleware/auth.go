// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	employeeRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	userRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/user"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// checkCachedToken compares the token hash against the auth cache. Returns
// (matched, decided): decided is false on a cache miss or cache outage, in
// which case the caller falls back to the stored hash.
func checkCachedToken(ctx context.Context, subject, computedHash string) (bool, bool) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return false, false
	}

	cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+subject).Result()
	if err == redis.Nil {
		return false, false
	}
	if err != nil {
		utils.GetLogger().Warn("auth cache lookup failed", zap.Error(err))
		return false, false
	}
	if cachedHash == computedHash {
		// Refresh the TTL on a hit so active sessions stay hot.
		_ = authCache.Expire(ctx, utils.AuthCachePrefix+subject, utils.AuthCacheTTL).Err()
		return true, true
	}
	return false, true
}

func cacheTokenHash(ctx context.Context, subject, computedHash string) {
	if authCache := utils.GetAuthCacheClient(); authCache != nil {
		_ = authCache.Set(ctx, utils.AuthCachePrefix+subject, computedHash, utils.AuthCacheTTL).Err()
	}
}

// JWTAuthOfficeMiddleware authenticates office (dashboard) accounts. On
// success it sets actorID and actorRole on the context.
func JWTAuthOfficeMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if role != "admin" && role != "staff" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Office credentials required"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		matched, decided := checkCachedToken(ctx, subject, computedHash)
		if !decided {
			user, err := users.GetByID(subject)
			if err != nil || user == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
				return
			}
			matched = user.TokenHash != "" && user.TokenHash == computedHash
			if matched {
				cacheTokenHash(ctx, subject, computedHash)
			}
		}
		if !matched {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or superseded"})
			return
		}

		c.Set("actorID", subject)
		c.Set("actorRole", role)
		c.Next()
	}
}

// JWTAuthEmployeeMiddleware authenticates crew (mobile) accounts. On success
// it sets actorID and actorRole on the context.
func JWTAuthEmployeeMiddleware(employees employeeRepo.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		matched, decided := checkCachedToken(ctx, subject, computedHash)
		if !decided {
			emp, err := employees.GetByEmployeeID(subject)
			if err != nil || emp == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
				return
			}
			matched = emp.TokenHash != "" && emp.TokenHash == computedHash
			if matched {
				cacheTokenHash(ctx, subject, computedHash)
			}
		}
		if !matched {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or superseded"})
			return
		}

		c.Set("actorID", subject)
		c.Set("actorRole", role)
		c.Next()
	}
}
