package service

import (
	"context"
	"coworking/infras/otel"
	"coworking/internal/domains/resource/model"
	"coworking/internal/domains/resource/model/dto"
	"coworking/internal/domains/resource/repository"
	"coworking/shared/constant"
	"coworking/shared/failure"
	"coworking/shared/validator"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type Resource interface {
	Add(ctx context.Context, req dto.CreateResourceRequest) (model.Resource, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Get(ctx context.Context, id int64) (model.Resource, bool)
	List(ctx context.Context) map[int64]model.Resource
	Sorted(ctx context.Context) []model.Resource
	Update(ctx context.Context, id int64, req dto.UpdateResourceRequest) (model.Resource, error)
}

// Ledger guards resource removal against concurrent bookings.
type Ledger interface {
	WithResourceUnbooked(ctx context.Context, resourceID int64, fn func() error) error
}

type serviceImpl struct {
	mu     sync.Mutex
	repo   repository.Resource
	ledger Ledger
	otel   otel.Otel
}

func New(repo repository.Resource, ledger Ledger, otel otel.Otel) Resource {
	return &serviceImpl{
		repo:   repo,
		ledger: ledger,
		otel:   otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateResourceRequest) (res model.Resource, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameTaken(ctx, req.Name, 0) {
		return res, failure.Conflict(fmt.Sprintf("resource named %q already exists", req.Name)) //nolint:wrapcheck
	}

	res = s.repo.Insert(ctx, req.Name, model.Type(req.Type))

	log.Info().Int64("id", res.ID).Str("name", res.Name).Str("type", string(res.Type)).Msg("resource added")

	return res, nil
}

// Delete removes the resource. A resource still referenced by bookings cannot be removed.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (deleted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("resource.id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.repo.Get(ctx, id); !ok {
		return false, nil
	}

	// lock order is resource then ledger; the ledger never takes mu
	err = s.ledger.WithResourceUnbooked(ctx, id, func() error {
		deleted = s.repo.Delete(ctx, id)

		return nil
	})
	if err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("refusing to delete booked resource")

		return false, err
	}

	log.Info().Int64("id", id).Bool("deleted", deleted).Msg("resource deleted")

	return deleted, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (model.Resource, bool) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.Get")
	defer scope.End()

	return s.repo.Get(ctx, id)
}

func (s *serviceImpl) List(ctx context.Context) map[int64]model.Resource {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.List")
	defer scope.End()

	resources := s.repo.GetAll(ctx)
	result := make(map[int64]model.Resource, len(resources))

	for _, r := range resources {
		result[r.ID] = r
	}

	return result
}

// Sorted lists resources by ascending id.
func (s *serviceImpl) Sorted(ctx context.Context) []model.Resource {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.Sorted")
	defer scope.End()

	// ids are assigned in insertion order
	return s.repo.GetAll(ctx)
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateResourceRequest) (res model.Resource, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".resource.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if req.Empty() {
		return res, failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.repo.Get(ctx, id)
	if !ok {
		return res, failure.NotFound(fmt.Sprintf("resource %d not found", id)) //nolint:wrapcheck
	}

	if req.Name != "" && req.Name != res.Name {
		if s.nameTaken(ctx, req.Name, id) {
			return res, failure.Conflict(fmt.Sprintf("resource named %q already exists", req.Name)) //nolint:wrapcheck
		}

		res.Name = req.Name
	}

	if req.Type != "" {
		res.Type = model.Type(req.Type)
	}

	s.repo.Update(ctx, res)

	log.Info().Int64("id", id).Str("name", res.Name).Str("type", string(res.Type)).Msg("resource updated")

	return res, nil
}

func (s *serviceImpl) nameTaken(ctx context.Context, name string, except int64) bool {
	return len(s.repo.GetAll(ctx, repository.ByName(name, except))) > 0
}
