// Package random генерирует секретный материал пользователя:
// персональный ключ подписи токенов и внешний идентификатор клиента.
package random

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// SecretKeyBytes — энтропия персонального ключа подписи (64 hex-символа).
	SecretKeyBytes = 32
	// ClientIDBytes — энтропия идентификатора клиента (14 hex-символов).
	ClientIDBytes = 7
)

// HexString возвращает size случайных байт в виде строки в нижнем регистре.
// Длина результата вдвое больше size.
func HexString(size int) (string, error) {
	const op = "random.HexString"
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return hex.EncodeToString(b), nil
}

// SecretKey генерирует персональный ключ подписи токенов пользователя.
func SecretKey() (string, error) {
	return HexString(SecretKeyBytes)
}

// ClientID генерирует идентификатор клиента в верхнем регистре.
func ClientID() (string, error) {
	s, err := HexString(ClientIDBytes)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(s), nil
}
