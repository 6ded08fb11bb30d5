// Package services содержит логику бизнес-уровня для регистрации пользователей,
// выпуска и проверки токенов доступа и активации учётных записей.
//
// Каждый пользователь подписывает свои токены собственным ключом, поэтому
// компрометация одного ключа не позволяет подделать токены других пользователей.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/auth-service/internal/lib/jwt"
	"github.com/magabrotheeeer/auth-service/internal/lib/password"
	"github.com/magabrotheeeer/auth-service/internal/lib/random"
	"github.com/magabrotheeeer/auth-service/internal/lib/sl"
	"github.com/magabrotheeeer/auth-service/internal/models"
	"github.com/magabrotheeeer/auth-service/internal/storage"
)

// TokenType — тип токена в ответе на вход.
const TokenType = "bearer"

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или storage.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// SetActivated помечает учётную запись активированной.
	SetActivated(ctx context.Context, username string) error
}

// Registration — результат регистрации. SecretKey раскрывается только здесь.
type Registration struct {
	Username  string
	Email     string
	SecretKey string
	ClientID  string
}

// AuthService отвечает за регистрацию, вход, выпуск и проверку токенов.
type AuthService struct {
	users          UserRepository
	accessTokenTTL time.Duration
	log            *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
// accessTokenTTL применяется к токенам, выданным при входе по паролю.
func NewAuthService(users UserRepository, accessTokenTTL time.Duration, log *slog.Logger) *AuthService {
	return &AuthService{
		users:          users,
		accessTokenTTL: accessTokenTTL,
		log:            log,
	}
}

// Register создает нового неактивированного пользователя со свежими
// хэшем пароля, ключом подписи и идентификатором клиента.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (*Registration, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	secretKey, err := random.SecretKey()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	clientID, err := random.ClientID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Activated:    false,
		SecretKey:    secretKey,
		ClientID:     clientID,
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Registration{
		Username:  user.Username,
		Email:     user.Email,
		SecretKey: user.SecretKey,
		ClientID:  user.ClientID,
	}, nil
}

// Authenticate проверяет пароль пользователя.
// Неизвестный пользователь и неверный пароль дают одинаковый ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, username, rawPassword string) (*models.User, error) {
	const op = "services.auth.Authenticate"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			password.CompareDummy(rawPassword)
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	return user, nil
}

// Login проверяет пароль и выпускает токен доступа на accessTokenTTL.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.Authenticate(ctx, username, rawPassword)
	if err != nil {
		return "", err
	}
	token, err := jwt.Issue(user.Username, user.SecretKey, s.accessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// RetrieveToken выпускает новый токен уже проверенному пользователю.
// Срок не передаётся, поэтому действует jwt.DefaultTTL, а не accessTokenTTL.
func (s *AuthService) RetrieveToken(_ context.Context, user *models.User) (string, error) {
	const op = "services.auth.RetrieveToken"

	token, err := jwt.Issue(user.Username, user.SecretKey, 0)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// VerifyToken проверяет токен и возвращает его владельца.
//
// Ключ проверки хранится у пользователя, поэтому sub читается без проверки
// подписи, пользователь ищется в хранилище, и только затем подпись и срок
// действия проверяются его ключом. Непроверенный sub используется
// исключительно как ключ поиска.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	const op = "services.auth.VerifyToken"
	log := s.log.With(slog.String("op", op))

	username, err := jwt.UnverifiedSubject(token)
	if err != nil {
		log.Debug("token rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Debug("token subject not found")
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := jwt.Parse(token, user.SecretKey); err != nil {
		log.Debug("token rejected", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	return user, nil
}

// ActivateAccount проверяет токен активации так же, как VerifyToken,
// и активирует учётную запись владельца. Повторная активация не ошибка.
func (s *AuthService) ActivateAccount(ctx context.Context, token string) error {
	const op = "services.auth.ActivateAccount"

	user, err := s.VerifyToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.users.SetActivated(ctx, user.Username); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("account activated", slog.String("op", op), slog.String("username", user.Username))
	return nil
}

// RequireActivated пропускает только активированных пользователей.
func RequireActivated(user *models.User) (*models.User, error) {
	if !user.Activated {
		return nil, ErrInactive
	}
	return user, nil
}
