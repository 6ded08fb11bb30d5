package services

import "errors"

var (
	// ErrConflict — username или email уже заняты.
	ErrConflict = errors.New("user already exists")
	// ErrUnauthorized — неверные учётные данные или недействительный токен.
	// Неизвестный пользователь и неверный пароль намеренно не различаются.
	ErrUnauthorized = errors.New("could not validate credentials")
	// ErrInactive — токен действителен, но учётная запись не активирована.
	ErrInactive = errors.New("inactive user")
	// ErrPasswordTooLong — пароль длиннее, чем способен захэшировать bcrypt.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)
