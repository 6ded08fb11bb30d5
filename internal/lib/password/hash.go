// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// GetHash создает bcrypt-хеш пароля для безопасного хранения.
// CompareHash сравнивает сохранённый bcrypt-хеш с введённым паролем.
package password

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes — предельная длина пароля в байтах, которую принимает bcrypt.
const MaxBytes = 72

// ErrTooLong возвращается GetHash для паролей длиннее MaxBytes.
var ErrTooLong = bcrypt.ErrPasswordTooLong

// dummyHash — хэш для сравнения, когда пользователь не найден.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
})

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Соль генерируется bcrypt и хранится внутри самого хэша.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
// Сравнение выполняет сам bcrypt за постоянное время.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CompareDummy выполняет такое же по стоимости сравнение, как CompareHash,
// но с фиксированным хэшем. Ответ для несуществующего пользователя
// не должен приходить быстрее, чем для неверного пароля.
func CompareDummy(externalPassword string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(externalPassword))
}
