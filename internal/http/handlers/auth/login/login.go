// Package login реализует HTTP-обработчик выдачи токена доступа по паролю.
//
// Учётные данные принимаются в виде формы application/x-www-form-urlencoded
// с полями username и password. При успехе возвращается токен доступа
// с типом bearer; неверные учётные данные дают 401 без уточнения причины.
package login

import (
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

// Request — учётные данные из формы.
type Request struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Response — выданный токен доступа.
type Response struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Бизнес-логика входа
	validate *validator.Validate // Валидатор для проверки входных данных
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	req := Request{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			log.Info("login failed", slog.String("username", req.Username))
			middlewarectx.Unauthorized(w, r, "incorrect username or password")
			return
		}
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("login success", slog.String("username", req.Username))
	render.JSON(w, r, Response{
		AccessToken: token,
		TokenType:   services.TokenType,
	})
}
