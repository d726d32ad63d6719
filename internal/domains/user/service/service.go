package service

import (
	"context"
	"coworking/infras/otel"
	"coworking/internal/domains/user/model"
	"coworking/internal/domains/user/model/dto"
	"coworking/internal/domains/user/repository"
	"coworking/shared/constant"
	"coworking/shared/failure"
	"coworking/shared/validator"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterRequest) (model.User, error)
	Authenticate(ctx context.Context, username, password string) (model.User, error)
	Get(ctx context.Context, username string) (model.User, bool)
	Reset()
}

type serviceImpl struct {
	mu   sync.Mutex
	repo repository.User
	otel otel.Otel

	// adminAssigned is set once the first account of this registry is created.
	adminAssigned bool
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Register creates the account. The first registration of the registry's lifetime is granted admin rights.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo.Exist(ctx, req.Username) {
		return res, failure.Conflict(fmt.Sprintf("user %q already exists", req.Username)) //nolint:wrapcheck
	}

	res = model.User{
		Username: req.Username,
		Password: req.Password,
		Admin:    !s.adminAssigned,
	}

	if !s.repo.Insert(ctx, res) {
		return model.User{}, failure.Conflict(fmt.Sprintf("user %q already exists", req.Username)) //nolint:wrapcheck
	}

	s.adminAssigned = true

	log.Info().Str("username", res.Username).Bool("admin", res.Admin).Msg("user registered")

	return res, nil
}

func (s *serviceImpl) Authenticate(ctx context.Context, username, password string) (res model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, ok := s.repo.Get(ctx, username)
	if !ok || res.Password != password {
		log.Warn().Str("username", username).Msg("authentication failed")

		return model.User{}, failure.InvalidCredentials
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, username string) (model.User, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()

	return s.repo.Get(ctx, username)
}

// Reset makes the next registration an admin again.
func (s *serviceImpl) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adminAssigned = false
}
