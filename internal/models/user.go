// Package models содержит доменную модель пользователя сервиса аутентификации.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UUID         string    // Суррогатный идентификатор записи
	Username     string    // Имя пользователя (уникальное, неизменяемое)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // bcrypt-хэш пароля
	Activated    bool      // Признак активации учётной записи
	SecretKey    string    // Персональный ключ подписи токенов, выдаётся один раз
	ClientID     string    // Внешний идентификатор клиента
	CreatedAt    time.Time // Дата регистрации
}
