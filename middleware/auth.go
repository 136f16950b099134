package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"api/config"
	"api/database"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserCacheKeyPrefix prefixes the Redis key caching an authenticated user's profile
const UserCacheKeyPrefix = "user_session:"

// UserCacheTTL bounds how stale a cached profile can get
const UserCacheTTL = 30 * time.Minute

var ErrNoUserInContext = errors.New("no authenticated user in request context")

// GenerateToken creates a signed JWT for the given user
func GenerateToken(userID string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// parseToken validates a JWT and returns the user ID it was issued for
func parseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

// tokenFromRequest extracts the JWT from the auth cookie or the Authorization header
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("auth_token"); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// AuthMiddleware rejects requests without a valid token and stores the
// authenticated user ID in the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		userID, err := parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// SetUserIdMiddleware stores the user ID in the context when a valid token is
// present but lets anonymous requests pass through
func SetUserIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if userID, err := parseToken(tokenString); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

// GetUserFromRequest loads the authenticated user's profile, serving it from
// the Redis session cache when possible. It responds with 401 itself when no
// valid user is attached to the request.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return models.User{}, ErrNoUserInContext
	}

	var user models.User
	cacheKey := UserCacheKeyPrefix + userID
	if cached, err := database.REDIS.Get(c, cacheKey).Result(); err == nil {
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return user, nil
		}
	}

	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return models.User{}, err
	}

	if payload, err := json.Marshal(user); err == nil {
		database.REDIS.Set(c, cacheKey, payload, UserCacheTTL)
	}

	return user, nil
}

// InvalidateUserCache drops the cached profile after a mutation so the next
// request observes the new balance
func InvalidateUserCache(c *gin.Context, userID string) {
	database.REDIS.Del(c, UserCacheKeyPrefix+userID)
}
