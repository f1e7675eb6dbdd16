package utils

import (
	"errors"

	"movebook/config"

	"github.com/golang-jwt/jwt"
)

// Dashboard tokens are issued by the external auth service; this server only
// validates them and extracts the tenant scope.

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ExtractCompanyIDFromToken extracts the company scope from a valid token.
func ExtractCompanyIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	companyID, ok := claims["companyId"].(string)
	if !ok || companyID == "" {
		return "", errors.New("token does not contain a valid 'companyId' claim")
	}

	return companyID, nil
}
