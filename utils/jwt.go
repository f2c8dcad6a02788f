package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/videomotion/video-motion-api/config"
	"github.com/videomotion/video-motion-api/entity"
)

// GenerateAccessToken signs a short-lived token carrying the identity
// fields clients render without a round trip.
func GenerateAccessToken(user *entity.User, cfg *config.EnvConfig) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"email":    user.Email,
		"fullname": user.Fullname,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(cfg.JWT.AccessExpire) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.AccessSecret))
}

// GenerateRefreshToken signs a long-lived token carrying only the user id.
func GenerateRefreshToken(user *entity.User, cfg *config.EnvConfig) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(cfg.JWT.RefreshExpire) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.RefreshSecret))
}

func ParseAccessToken(tokenString string, cfg *config.EnvConfig) (*jwt.Token, error) {
	return parseToken(tokenString, cfg.JWT.AccessSecret)
}

func ParseRefreshToken(tokenString string, cfg *config.EnvConfig) (*jwt.Token, error) {
	return parseToken(tokenString, cfg.JWT.RefreshSecret)
}

func parseToken(tokenString, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
}

// ExtractAccessToken pulls the bearer credential from the accessToken
// cookie or the Authorization header.
func ExtractAccessToken(c *gin.Context) string {
	if token, err := c.Cookie("accessToken"); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// UserIDFromClaims reads and validates the user_id claim.
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("invalid user_id claim")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user_id claim")
	}
	return userID, nil
}

// TokenJTI returns the jti claim, empty when absent.
func TokenJTI(claims jwt.MapClaims) string {
	jti, _ := claims["jti"].(string)
	return jti
}

// TokenRemainingTTL reports how long the token is still valid for, used to
// bound the revocation record in redis.
func TokenRemainingTTL(claims jwt.MapClaims) time.Duration {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	ttl := time.Until(exp.Time)
	if ttl < 0 {
		return 0
	}
	return ttl
}

// GetUserFromContext returns the user attached by the auth middleware.
func GetUserFromContext(c *gin.Context) (*entity.User, error) {
	value, exists := c.Get("user")
	if !exists {
		return nil, errors.New("user is missing from context")
	}
	user, ok := value.(*entity.User)
	if !ok || user == nil {
		return nil, errors.New("invalid user in context")
	}
	return user, nil
}
