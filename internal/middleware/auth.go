package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"consensus-api/internal/domain"
	"consensus-api/internal/response"
)

const (
	// SessionKey is the gin context key holding the resolved domain.Session
	SessionKey = "session"
	// UserIDKey is kept for loggers and handlers that only need the id
	UserIDKey = "user_id"
)

var (
	ErrMissingToken   = errors.New("token is required")
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrMissingSubject = errors.New("user id not found in token")
	ErrInvalidSubject = errors.New("invalid user id format")
)

// ParseSession validates an HS256 token and resolves the caller.
// The user id is read from "sub", then "user_id", then "userId".
func ParseSession(jwtSecret, tokenString string) (domain.Session, error) {
	if tokenString == "" {
		return domain.Session{}, ErrMissingToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return domain.Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, ErrInvalidToken
	}

	var userIDStr string
	for _, key := range []string{"sub", "user_id", "userId"} {
		if v, ok := claims[key].(string); ok && v != "" {
			userIDStr = v
			break
		}
	}
	if userIDStr == "" {
		return domain.Session{}, ErrMissingSubject
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil || userID == uuid.Nil {
		return domain.Session{}, ErrInvalidSubject
	}

	isAdmin, _ := claims["is_admin"].(bool)
	return domain.Session{UserID: userID, IsAdmin: isAdmin}, nil
}

// Auth returns a middleware that resolves the bearer token into a session
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		session, err := ParseSession(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(SessionKey, session)
		c.Set(UserIDKey, session.UserID)
		c.Next()
	}
}

// GetSession returns the session resolved by Auth. The zero session is
// returned when the request never went through Auth.
func GetSession(c *gin.Context) domain.Session {
	if v, ok := c.Get(SessionKey); ok {
		if session, ok := v.(domain.Session); ok {
			return session
		}
	}
	return domain.Session{}
}
