package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenClaims is the payload of a bearer token: subject carries the
// username, Role the authorization tag.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return []byte(secret), nil
}

func tokenTTL() time.Duration {
	v := os.Getenv("JWT_TTL_SECONDS")
	if v == "" {
		return defaultTokenTTL
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(secs) * time.Second
}

// GenerateToken signs a bearer token for the username/role pair, valid for
// the configured TTL starting now.
func GenerateToken(username, userRole string) (string, error) {
	return GenerateTokenAt(username, userRole, time.Now())
}

func GenerateTokenAt(username, userRole string, now time.Time) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	claims := TokenClaims{
		Role: userRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL())),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyToken checks signature and expiry and returns the embedded
// username and role. Expiry is reported distinctly from other failures.
func VerifyToken(token string) (string, string, error) {
	return VerifyTokenAt(token, time.Now())
}

func VerifyTokenAt(token string, now time.Time) (string, string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", "", err
	}
	claims := &TokenClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrTokenExpired
		}
		return "", "", ErrTokenInvalid
	}
	return claims.Subject, claims.Role, nil
}
