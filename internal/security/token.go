package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blogcms/api/internal/ids"
	"blogcms/api/internal/models"
)

// Claims is the signed payload carried by every token: subject, issued-at,
// expiry and the token type tag checked on verification.
type Claims struct {
	Type models.TokenType `json:"type"`
	jwt.RegisteredClaims
}

func SignToken(secret string, userID string, expiresAt time.Time, tokenType models.TokenType) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			// iat has second granularity, so two tokens minted for the same
			// user in the same second would otherwise collide. The jti keeps
			// every minted token distinct.
			ID: ids.New(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

// ParseToken validates the signature and expiry and returns the claims.
// The type claim is not checked here; callers compare it against the type
// they expect.
func ParseToken(tokenStr string, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
