package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-service/internal/http/response"
	services "github.com/magabrotheeeer/auth-service/internal/services/auth"
)

// ActiveUserMiddleware отклоняет запросы неактивированных пользователей с кодом 400.
// Должен стоять после JWTMiddleware.
func ActiveUserMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.ActiveUserMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			user, ok := UserFromContext(r.Context())
			if !ok {
				log.Error("user missing in context")
				Unauthorized(w, r, services.ErrUnauthorized.Error())
				return
			}
			if _, err := services.RequireActivated(user); err != nil {
				log.Info("inactive user", slog.String("username", user.Username))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
