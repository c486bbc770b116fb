package util

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims identifies an anonymous test taker.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(sessionID, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid && claims.SessionID != "" {
		return claims, nil
	}
	return nil, ErrInvalidSession
}

func GetSessionFromContext(c *gin.Context) *SessionClaims {
	v, exists := c.Get(ContextSessionKey)
	if !exists {
		return nil
	}
	claims, ok := v.(*SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// SessionID returns the id of the authenticated session or ErrSessionNotFound.
func SessionID(c *gin.Context) (string, error) {
	claims := GetSessionFromContext(c)
	if claims == nil {
		return "", ErrSessionNotFound
	}
	return claims.SessionID, nil
}
