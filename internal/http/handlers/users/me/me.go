// Package me реализует GET /users/me/: данные текущего пользователя из контекста запроса.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-service/internal/http/middlewarectx"
	services "github.com/magabrotheeeer/auth-service/internal/services/auth"
)

// Response — публичное представление пользователя. Ключ подписи сюда не попадает.
type Response struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Activated bool   `json:"activated"`
}

// Handler обрабатывает GET /users/me/.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.me"

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		h.log.Error("user missing in context",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		middlewarectx.Unauthorized(w, r, services.ErrUnauthorized.Error())
		return
	}

	render.JSON(w, r, Response{
		Username:  user.Username,
		Email:     user.Email,
		Activated: user.Activated,
	})
}
