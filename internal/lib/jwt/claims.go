// Package jwt выпускает и проверяет токены доступа, подписанные
// персональным ключом пользователя (HS256).
//
// Ключ проверки заранее неизвестен: он хранится в записи пользователя,
// поэтому проверка состоит из двух шагов. UnverifiedSubject читает sub
// без проверки подписи, вызывающий находит пользователя, затем Parse
// проверяет подпись и срок действия его ключом.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL — срок действия токена, если ttl не передан.
const DefaultTTL = 15 * time.Minute

// ErrNoSubject возвращается, если в токене нет claim'а sub.
var ErrNoSubject = errors.New("token has no subject")

// Claims описывает данные, хранящиеся в токене: sub = username, exp.
type Claims struct {
	jwt.RegisteredClaims
}

// Username возвращает имя пользователя из claim'а sub.
func (c *Claims) Username() string {
	return c.Subject
}
