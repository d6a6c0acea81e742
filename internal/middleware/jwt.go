package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	logrus "github.com/sirupsen/logrus"
)

// Token lifetimes: short-lived access, day-long refresh.
const (
	AccessTokenTTL  = 60 * time.Minute
	RefreshTokenTTL = 24 * time.Hour
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// GenerateAccessToken issues the short-lived token used on every API call.
func GenerateAccessToken(userID uint, staff bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"is_staff":   staff,
		"token_type": "access",
		"exp":        time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GenerateRefreshToken issues the longer-lived token accepted only by the
// refresh endpoint.
func GenerateRefreshToken(userID uint, staff bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID,
		"is_staff":   staff,
		"token_type": "refresh",
		"exp":        time.Now().Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a token and checks its token_type claim, so a refresh
// token can never pass where an access token is expected.
func ParseToken(tokenStr, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if typ, _ := claims["token_type"].(string); typ != wantType {
		return nil, errors.New("wrong token type")
	}
	return claims, nil
}

// authenticate validates the bearer access token and stores the principal on
// the context. Aborts with 401 and reports false on any failure.
func authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := ParseToken(tokenString, "access")
	if err != nil {
		logrus.WithError(err).WithField("path", c.FullPath()).Warn("rejected bearer token")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return false
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		return false
	}
	staff, _ := claims["is_staff"].(bool)

	c.Set("user_id", uint(userID))
	c.Set("is_staff", staff)
	return true
}

// RequireAuth ensures a valid access token is present. Every API read and
// write sits behind this; there is no anonymous access.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireStaff ensures the access token is valid and carries the staff flag.
// Reference-entity writes sit behind this.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c) {
			return
		}
		if staff, _ := c.Get("is_staff"); staff != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
