package middleware

import (
	"context"
	"coworking/infras/otel"
	userService "coworking/internal/domains/user/service"
	"coworking/permissions"
	"coworking/shared/constant"
	"coworking/shared/failure"
	"coworking/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const basicRealm = `Basic realm="coworking"`

// Auth authenticates requests with HTTP Basic credentials checked against the user registry.
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role restricts routes to the roles listed in the embedded permissions.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	users      userService.User
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthRoleMiddleware(users userService.User, otel otel.Otel, permission *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		users:      users,
		otel:       otel,
		permission: permission,
	}
}

func (m *authRoleImpl) find(request *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return permissions.Permission{}
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return m.permission.FindPermissions(path, request.Method)
}

func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		if m.find(request).Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		username, password, ok := request.BasicAuth()
		if !ok {
			err := failure.Unauthorized("missing basic authorization")

			response.WithUnauthorized(writer, err, basicRealm)

			scope.TraceError(err)
			scope.End()

			return
		}

		user, err := m.users.Authenticate(ctx, username, password)
		if err != nil {
			response.WithUnauthorized(writer, err, basicRealm)

			scope.TraceError(err)
			scope.End()

			return
		}

		role := constant.RoleUser
		if user.Admin {
			role = constant.RoleAdmin
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"user.name":       user.Username,
			"user.role":       role,
		})
		scope.End()

		ctx = context.WithValue(request.Context(), constant.ContextKeyUsername, user.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserAdmin, user.Admin)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC must run after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if m.permission == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		permission := m.find(request)
		if m.permission.Skip || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(role) {
			scope.TraceError(failure.ForbiddenError)
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})

			log.Warn().Str("role", role).Str("path", request.URL.Path).Msg("role not allowed")

			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
