package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

const (
	SessionTokenTTL      = 24 * time.Hour
	VerificationTokenTTL = 24 * time.Hour

	PurposeEmailVerification = "email_verification"

	// ContextKeyUser is where the auth middleware stores *Claims.
	ContextKeyUser = "user"
)

type Claims struct {
	ID      int64  `json:"id"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	jwt.StandardClaims
}

func CreateJWTToken(id int64, role string, jwtSecretKey string) (string, error) {
	return signClaims(Claims{ID: id, Role: role}, SessionTokenTTL, jwtSecretKey)
}

func CreateVerificationToken(pembeliID int64, jwtSecretKey string) (string, error) {
	return signClaims(Claims{ID: pembeliID, Purpose: PurposeEmailVerification}, VerificationTokenTTL, jwtSecretKey)
}

func signClaims(claims Claims, ttl time.Duration, jwtSecretKey string) (string, error) {
	now := time.Now()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ParseJWTToken verifies the HS256 signature and expiry of tokenString.
func ParseJWTToken(tokenString string, jwtSecretKey string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}

func ExtractTokenUser(c echo.Context) (int64, string) {
	claims, ok := c.Get(ContextKeyUser).(*Claims)
	if !ok || claims == nil {
		return 0, ""
	}
	return claims.ID, claims.Role
}
