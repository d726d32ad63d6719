package user

import (
	"coworking/infras/otel"
	"coworking/internal/domains/user/model/dto"
	"coworking/internal/domains/user/service"
	"coworking/shared"
	"coworking/shared/constant"
	"coworking/shared/failure"
	"coworking/shared/validator"
	"coworking/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Register)
		routerGroup.Get("/me", handler.GetMe)
	})
}

// Register handles the registration of a new user.
// @Summary Register a user
// @Description Register a new account. The first account registered becomes the administrator.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.UserResponse] "Registered user"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/users [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User registered " + user.Username)

	res := dto.UserResponse{}
	res.FromModel(user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMe returns the authenticated user.
// @Summary Current user
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "Current user"
// @Failure 401 {object} response.Error
// @Router /v1/users/me [get]
// @Security BasicAuth
func (handler *Handler) GetMe(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	username, _ := shared.CurrentUser(ctx)

	user, ok := handler.service.Get(ctx, username)
	if !ok {
		err := failure.Unauthorized("unknown user")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res := dto.UserResponse{}
	res.FromModel(user)

	response.WithJSON(writer, http.StatusOK, res)
}
