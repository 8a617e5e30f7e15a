package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var ErrNotSuperuser = errors.New("token does not grant superuser access")

// AdminClaims are the claims of an admin bearer token. Superuser is the only
// access-control concept the API knows about.
type AdminClaims struct {
	Superuser bool `json:"superuser"`
	jwt.RegisteredClaims
}

type TokenData struct {
	Sub       string
	Superuser bool
	Exp       int64
}

// IssueAdminToken signs an HS256 superuser token for subject, valid for ttl.
func IssueAdminToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AdminClaims{
		Superuser: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic, unexpired and grants
// superuser access.
func ValidateToken(tokenString string, secret []byte) (*TokenData, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret not configured")
	}

	clean := sanitizeToken(tokenString)
	var claims AdminClaims
	token, err := jwt.ParseWithClaims(clean, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if !claims.Superuser {
		return nil, ErrNotSuperuser
	}

	return &TokenData{
		Sub:       claims.Subject,
		Superuser: claims.Superuser,
		Exp:       claims.ExpiresAt.Unix(),
	}, nil
}

func ParseTokenDataCtx(ctx echo.Context, secret []byte) (*TokenData, error) {
	token := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return ValidateToken(token, secret)
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}
