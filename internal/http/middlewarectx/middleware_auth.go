// Package middlewarectx содержит HTTP middleware для проверки bearer-токенов.
//
// JWTMiddleware извлекает токен из заголовка Authorization, проверяет его
// через сервис аутентификации и кладёт владельца токена в контекст запроса.
// ActiveUserMiddleware пропускает дальше только активированных пользователей.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-service/internal/http/response"
	"github.com/magabrotheeeer/auth-service/internal/lib/sl"
	"github.com/magabrotheeeer/auth-service/internal/models"
	services "github.com/magabrotheeeer/auth-service/internal/services/auth"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для текущего пользователя в контексте.
const User Key = "user"

// TokenVerifier проверяет токен и возвращает его владельца.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

// Unauthorized пишет 401 с заголовком WWW-Authenticate.
func Unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}

// BearerToken достаёт токен из заголовка Authorization. Схема регистронезависима.
func BearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// JWTMiddleware возвращает HTTP middleware, который проверяет токен в заголовке Authorization.
func JWTMiddleware(verifier TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token, ok := BearerToken(r)
			if !ok {
				log.Info("missing or invalid authorization header")
				Unauthorized(w, r, services.ErrUnauthorized.Error())
				return
			}

			user, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					log.Info("token rejected")
					Unauthorized(w, r, services.ErrUnauthorized.Error())
					return
				}
				log.Error("failed to verify token", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает пользователя, положенного JWTMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok && user != nil
}
