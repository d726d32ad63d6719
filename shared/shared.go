package shared

import (
	"context"
	"coworking/shared/cache"
	"coworking/shared/constant"
	"coworking/shared/failure"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	var builder strings.Builder

	builder.WriteString(prefix)

	for _, part := range parts {
		builder.WriteString(":")
		builder.WriteString(fmt.Sprint(part))
	}

	return builder.String()
}

// InvalidateCaches clears every cache key under prefix. Failures are logged, never returned.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	pattern := prefix + ":" + constant.Asterix

	if err := c.Clear(ctx, pattern); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to invalidate caches")
	}
}

// ParseID parses a positive numeric identifier.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid id %q", value)) //nolint:wrapcheck
	}

	return id, nil
}

// CurrentUser returns the authenticated username and admin flag stored on ctx.
func CurrentUser(ctx context.Context) (string, bool) {
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	admin, _ := ctx.Value(constant.ContextKeyUserAdmin).(bool)

	return username, admin
}
