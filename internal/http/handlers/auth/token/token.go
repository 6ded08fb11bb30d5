// Package token реализует выдачу нового токена уже аутентифицированному пользователю.
package token

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/auth-service/internal/http/response"
	"github.com/magabrotheeeer/auth-service/internal/lib/sl"
	"github.com/magabrotheeeer/auth-service/internal/models"
	services "github.com/magabrotheeeer/auth-service/internal/services/auth"
)

// Service выпускает токен для пользователя.
type Service interface {
	RetrieveToken(ctx context.Context, user *models.User) (string, error)
}

// Handler обрабатывает GET /retrieve-access-token.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user missing in context")
		middlewarectx.Unauthorized(w, r, services.ErrUnauthorized.Error())
		return
	}

	token, err := h.service.RetrieveToken(r.Context(), user)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("token retrieved", slog.String("username", user.Username))
	render.JSON(w, r, response.Success("Token retrieved successfully", token))
}
