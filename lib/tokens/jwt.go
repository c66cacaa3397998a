package tokens

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

type jwtCustomClaims struct {
	ID        int64 `json:"id"`
	IsRefresh bool  `json:"isRefresh"`

	jwt.StandardClaims
}

// GenerateAccessToken : Generate Access Token
func GenerateAccessToken(secret []byte, expiryInSeconds int, userID int64) (string, error) {
	return generateToken(secret, expiryInSeconds, userID, false)
}

// GenerateRefreshToken : Generate Refresh Token
func GenerateRefreshToken(secret []byte, expiryInSeconds int, userID int64) (string, error) {
	return generateToken(secret, expiryInSeconds, userID, true)
}

func generateToken(secret []byte, expiryInSeconds int, userID int64, isRefresh bool) (string, error) {
	claims := &jwtCustomClaims{
		ID:        userID,
		IsRefresh: isRefresh,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryInSeconds) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}
	return t, nil
}

// ParseToken : Parse and verify a token, returning its claims
func ParseToken(secret []byte, tokenString string) (userID int64, isRefresh bool, err error) {
	claims := &jwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return 0, false, err
	}
	if !token.Valid {
		return 0, false, fmt.Errorf("invalid token")
	}
	return claims.ID, claims.IsRefresh, nil
}

// Middleware : echo middleware that authenticates requests with a Bearer
// access token and stores the user id on the context under "UserID".
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed token")
			}

			userID, isRefresh, err := ParseToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil || isRefresh {
				// refresh tokens are only good for the auth endpoint
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("UserID", userID)
			return next(c)
		}
	}
}
