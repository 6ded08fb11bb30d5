package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/auth-service/internal/lib/sl"
	"github.com/magabrotheeeer/auth-service/internal/models"
)

const userKeyPrefix = "auth:user:"

// Результаты обращения к кэшу для метрик.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// UserRepository — хранилище пользователей, поверх которого работает кэш.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	SetActivated(ctx context.Context, username string) error
}

// Recorder учитывает попадания и промахи кэша.
type Recorder interface {
	ObserveCache(result string)
}

// UserStore — read-through кэш записей пользователей по username.
//
// Ошибки redis не прерывают запрос: чтение уходит в хранилище.
// Отсутствующие пользователи не кэшируются. Активация сбрасывает запись.
type UserStore struct {
	next     UserRepository
	cache    *Cache
	ttl      time.Duration
	log      *slog.Logger
	recorder Recorder
}

// NewUserStore оборачивает хранилище next кэшем c.
func NewUserStore(next UserRepository, c *Cache, ttl time.Duration, log *slog.Logger, recorder Recorder) *UserStore {
	return &UserStore{
		next:     next,
		cache:    c,
		ttl:      ttl,
		log:      log,
		recorder: recorder,
	}
}

// CreateUser передаёт создание пользователя в хранилище.
func (s *UserStore) CreateUser(ctx context.Context, user models.User) (string, error) {
	return s.next.CreateUser(ctx, user)
}

// GetUserByUsername возвращает пользователя из кэша или из хранилища.
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "cache.UserStore.GetUserByUsername"
	log := s.log.With(slog.String("op", op))
	key := userKeyPrefix + username

	var cached models.User
	found, err := s.cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		s.recorder.ObserveCache(ResultError)
		log.Warn("failed to read user from cache", sl.Err(err))
	case found:
		s.recorder.ObserveCache(ResultHit)
		return &cached, nil
	default:
		s.recorder.ObserveCache(ResultMiss)
	}

	user, err := s.next.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, user, s.ttl); err != nil {
		log.Warn("failed to write user to cache", sl.Err(err))
	}
	return user, nil
}

// SetActivated активирует пользователя и сбрасывает его запись в кэше.
func (s *UserStore) SetActivated(ctx context.Context, username string) error {
	const op = "cache.UserStore.SetActivated"
	if err := s.next.SetActivated(ctx, username); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, userKeyPrefix+username); err != nil {
		s.log.Error("failed to invalidate cached user", slog.String("op", op), sl.Err(err))
	}
	return nil
}
