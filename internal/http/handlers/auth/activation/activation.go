// Package activation реализует активацию учётной записи по токену из query-параметра.
package activation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/auth-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/auth-service/internal/http/response"
	"github.com/magabrotheeeer/auth-service/internal/lib/sl"
	services "github.com/magabrotheeeer/auth-service/internal/services/auth"
)

// Service активирует учётную запись владельца токена.
type Service interface {
	ActivateAccount(ctx context.Context, token string) error
}

// Request — параметры запроса активации.
type Request struct {
	Token string `validate:"required"`
}

// Handler обрабатывает POST /account-activation.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.activation"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := Request{Token: r.URL.Query().Get("token")}
	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.ActivateAccount(r.Context(), req.Token); err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			log.Info("activation token rejected")
			middlewarectx.Unauthorized(w, r, services.ErrUnauthorized.Error())
			return
		}
		log.Error("activation failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, response.Success("Account activated successfully"))
}
