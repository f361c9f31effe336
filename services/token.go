package services

import (
	"errors"
	"fmt"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the identity a verified session token proves.
type SessionClaims struct {
	UserID string
	Email  string
}

// GenerateToken mints a signed session token for the user. Expiry is
// the only invalidation path; there is no revocation.
func GenerateToken(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(utils.JWTExpirationTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// ValidateToken verifies the signature and expiry of a session token and
// returns the embedded identity.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, ErrInvalidToken
	}

	// jwt.Parse already rejects expired tokens when exp is present, but a
	// token without exp must not pass either
	if _, hasExp := claims["exp"]; !hasExp {
		return nil, ErrInvalidToken
	}

	return &SessionClaims{UserID: userID, Email: email}, nil
}
