package register

import (
	"context"

	services "github.com/magabrotheeeer/auth-service/internal/services/auth"
)

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*services.Registration, error)
}
