package auth

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/auth-service/internal/http/handlers/auth/activation"
	"github.com/magabrotheeeer/auth-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/auth-service/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/auth-service/internal/http/handlers/auth/token"
	"github.com/magabrotheeeer/auth-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/auth-service/internal/http/handlers/users/me"
	"github.com/magabrotheeeer/auth-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/auth-service/internal/metrics"
	services "github.com/magabrotheeeer/auth-service/internal/services/auth"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *services.AuthService, m *metrics.Metrics, db health.Pinger) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		m.Middleware,
	)

	// Открытые конечные точки
	r.Post("/register", register.New(logger, authService).ServeHTTP)
	r.Post("/token", login.New(logger, authService).ServeHTTP)
	r.Post("/account-activation", activation.New(logger, authService).ServeHTTP)

	// Только для активированных пользователей с действующим токеном
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Use(middlewarectx.ActiveUserMiddleware(logger))
		r.Get("/retrieve-access-token", token.New(logger, authService).ServeHTTP)
		r.Get("/users/me/", me.New(logger).ServeHTTP)
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", m.Handler())
}
