package middleware

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "gradproject-teams/internal/errors"
	"gradproject-teams/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextEmail  = "email"
	ContextClaims = "auth_claims"
)

// Claims are the JWT claims issued by the university sign-in service
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens. Tokens are never issued here.
type Authenticator struct {
	secret []byte
}

// NewAuthenticator creates an authenticator for tokens signed with secret
func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Validate parses and verifies a token
func (a *Authenticator) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireAuth validates the bearer token and stores the caller's email on
// both the gin context and the request context
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, apperrors.ErrMissingToken)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		claims, err := a.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected bearer token")
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextClaims, claims)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Email))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *apperrors.AuthorizationError) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Message})
}

// GetUserEmail returns the authenticated caller's email, if any
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ContextEmail)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok && s != ""
}
