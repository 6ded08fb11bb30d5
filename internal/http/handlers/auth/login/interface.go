package login

import (
	"context"
)

// Service описывает вход по паролю.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}
