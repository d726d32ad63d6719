// Package permissions holds the role table of the HTTP API, embedded from permissions.json.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route. Skip marks a public route.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. A route without roles is open to any authenticated user.
func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up a chi route pattern such as /v1/resources/{id}.
// A trailing slash and the method case are ignored.
func (r *PermissionData) FindPermissions(pattern, method string) Permission {
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	idx := slices.IndexFunc(r.Endpoints, func(p Permission) bool {
		return p.Path == pattern && strings.EqualFold(p.Method, method)
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

var load = sync.OnceValue(func() *PermissionData {
	var data PermissionData

	if err := json.Unmarshal(permissionsData, &data); err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions, every protected route will be forbidden")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return &data
})

// Get returns the decoded role table, or nil when it cannot be decoded.
func Get() *PermissionData {
	return load()
}
