package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var validMethods = []string{jwt.SigningMethodHS256.Alg()}

// Issue создаёт токен для username, подписанный secretKey.
//
// Нулевой ttl заменяется на DefaultTTL. Отрицательный ttl даёт уже
// просроченный токен.
func Issue(username, secretKey string, ttl time.Duration) (string, error) {
	const op = "jwt.Issue"
	if ttl == 0 {
		ttl = DefaultTTL
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// UnverifiedSubject читает claim sub без проверки подписи и срока действия.
//
// Результат можно использовать только как ключ поиска пользователя.
func UnverifiedSubject(tokenStr string) (string, error) {
	const op = "jwt.UnverifiedSubject"
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%s: %w", op, ErrNoSubject)
	}
	return claims.Subject, nil
}

// Parse проверяет подпись токена ключом secretKey и срок его действия.
// Принимается только HS256, claim exp обязателен.
func Parse(tokenStr, secretKey string) (*Claims, error) {
	const op = "jwt.Parse"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(secretKey), nil
	}, jwt.WithValidMethods(validMethods), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
