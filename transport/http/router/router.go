package router

import (
	"coworking/config"
	"coworking/internal/handlers/booking"
	"coworking/internal/handlers/resource"
	"coworking/internal/handlers/user"
	"coworking/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type DomainHandlers struct {
	User     user.Handler
	Resource resource.Handler
	Booking  booking.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

// SetupRoutes installs the middleware stack and mounts the /v1 API. Routes added to router afterwards share the stack.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.RequestID, r.App.Tracing)

	if c := r.Config.App.CORS; c.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   c.AllowedOrigins,
			AllowedMethods:   c.AllowedMethods,
			AllowedHeaders:   c.AllowedHeaders,
			AllowCredentials: c.AllowCredentials,
			MaxAge:           c.MaxAgeSeconds,
		}))
	}

	router.Use(r.App.RateLimit(), r.AuthRole.Auth, r.AuthRole.RBAC)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Resource.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(cfg *config.Config, domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
