package repository

import (
	"context"
	"coworking/infras/otel"
	"coworking/internal/domains/user/model"
	gRepo "coworking/shared/repository"
)

// User stores accounts keyed by username.
type User interface {
	Insert(ctx context.Context, user model.User) bool
	Get(ctx context.Context, username string) (model.User, bool)
	Exist(ctx context.Context, username string) bool
	Count(ctx context.Context, filters ...gRepo.Filter[model.User]) int
}

type repositoryImpl struct {
	*gRepo.Repository[string, model.User]
}

func New(otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[string, model.User](model.EntityName, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) bool {
	return r.Repository.Insert(ctx, user.Username, user)
}

func Admins() gRepo.Filter[model.User] {
	return func(u model.User) bool {
		return u.Admin
	}
}
