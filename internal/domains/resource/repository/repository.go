package repository

import (
	"context"
	"coworking/infras/otel"
	"coworking/internal/domains/resource/model"
	gRepo "coworking/shared/repository"
)

type Resource interface {
	Insert(ctx context.Context, name string, resourceType model.Type) model.Resource
	Get(ctx context.Context, id int64) (model.Resource, bool)
	GetAll(ctx context.Context, filters ...gRepo.Filter[model.Resource]) []model.Resource
	Update(ctx context.Context, resource model.Resource) bool
	Delete(ctx context.Context, id int64) bool
}

type repositoryImpl struct {
	*gRepo.Repository[int64, model.Resource]
	seq gRepo.Sequence
}

func New(otel otel.Otel) Resource {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[int64, model.Resource](model.EntityName, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, name string, resourceType model.Type) model.Resource {
	resource := model.Resource{
		ID:   r.seq.Next(),
		Name: name,
		Type: resourceType,
	}

	r.Repository.Insert(ctx, resource.ID, resource)

	return resource
}

func (r *repositoryImpl) Update(ctx context.Context, resource model.Resource) bool {
	return r.Repository.Update(ctx, resource.ID, resource)
}

// ByName matches resources called name, optionally skipping one id.
func ByName(name string, except int64) gRepo.Filter[model.Resource] {
	return func(r model.Resource) bool {
		return r.Name == name && r.ID != except
	}
}
