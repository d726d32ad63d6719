package http_test

import (
	"context"
	"coworking/config"
	"coworking/infras/otel/mocks"
	bookingRepo "coworking/internal/domains/booking/repository"
	bookingService "coworking/internal/domains/booking/service"
	resourceRepo "coworking/internal/domains/resource/repository"
	resourceService "coworking/internal/domains/resource/service"
	userRepo "coworking/internal/domains/user/repository"
	userService "coworking/internal/domains/user/service"
	bookingHandler "coworking/internal/handlers/booking"
	resourceHandler "coworking/internal/handlers/resource"
	userHandler "coworking/internal/handlers/user"
	"coworking/permissions"
	"coworking/shared/cache"
	"coworking/shared/datetime"
	transport "coworking/transport/http"
	"coworking/transport/http/middleware"
	"coworking/transport/http/router"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	username, password string
}

var (
	admin = credentials{"admin", "admin"}
	alice = credentials{"alice", "pw"}
	bob   = credentials{"bob", "pw"}
)

func newServer(t *testing.T) http.Handler {
	t.Helper()

	restore := datetime.SetNow(func() time.Time {
		return time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)
	})
	t.Cleanup(restore)

	otel := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}

	bookings := bookingRepo.New(otel)
	resources := resourceRepo.New(otel)
	users := userRepo.New(otel)

	userSvc := userService.New(users, otel)
	bookingSvc := bookingService.New(bookings, resources, users, cfg, cache.NewNoop(), otel)
	resourceSvc := resourceService.New(resources, bookingSvc, otel)

	r := router.New(
		cfg,
		router.DomainHandlers{
			User:     userHandler.New(userSvc, otel),
			Resource: resourceHandler.New(resourceSvc, bookingSvc, otel),
			Booking:  bookingHandler.New(bookingSvc, resourceSvc, otel),
		},
		middleware.NewAppMiddleware(otel, cfg, cache.NewNoop()),
		middleware.NewAuthRoleMiddleware(userSvc, otel, permissions.Get()),
	)

	return transport.New(cfg, r).Handler()
}

func do(t *testing.T, h http.Handler, method, target string, as *credentials, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if as != nil {
		req.SetBasicAuth(as.username, as.password)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), rec.Body.String())
	}

	return rec.Code, payload
}

func data(t *testing.T, payload map[string]any) map[string]any {
	t.Helper()

	d, ok := payload["data"].(map[string]any)
	require.True(t, ok, "payload has no data: %v", payload)

	return d
}

func register(t *testing.T, h http.Handler, c credentials) map[string]any {
	t.Helper()

	code, payload := do(t, h, http.MethodPost, "/v1/users",
		nil, `{"username":"`+c.username+`","password":"`+c.password+`"}`)
	require.Equal(t, http.StatusCreated, code, payload)

	return data(t, payload)
}

func setup(t *testing.T) http.Handler {
	t.Helper()

	h := newServer(t)

	assert.Equal(t, true, register(t, h, admin)["admin"])
	assert.Equal(t, false, register(t, h, alice)["admin"])
	register(t, h, bob)

	code, payload := do(t, h, http.MethodPost, "/v1/resources", &admin, `{"name":"Desk 1","type":"WORKSPACE"}`)
	require.Equal(t, http.StatusCreated, code, payload)

	code, payload = do(t, h, http.MethodPost, "/v1/resources", &admin, `{"name":"Room A","type":"CONFERENCE_ROOM"}`)
	require.Equal(t, http.StatusCreated, code, payload)
	assert.Equal(t, "CONFERENCE_ROOM", data(t, payload)["type"])

	return h
}

func TestHealth(t *testing.T) {
	h := newServer(t)

	code, payload := do(t, h, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", payload["message"])
}

func TestUsers(t *testing.T) {
	h := newServer(t)

	register(t, h, admin)

	code, _ := do(t, h, http.MethodPost, "/v1/users", nil, `{"username":"admin","password":"x"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = do(t, h, http.MethodPost, "/v1/users", nil, `{"username":"","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodPost, "/v1/users", nil, `not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, payload := do(t, h, http.MethodGet, "/v1/users/me", &admin, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "admin", data(t, payload)["username"])

	code, _ = do(t, h, http.MethodGet, "/v1/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, h, http.MethodGet, "/v1/users/me", &credentials{"admin", "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestResources(t *testing.T) {
	h := setup(t)

	code, _ := do(t, h, http.MethodPost, "/v1/resources", &alice, `{"name":"Desk 2","type":"WORKSPACE"}`)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, h, http.MethodPost, "/v1/resources", &admin, `{"name":"Desk 1","type":"WORKSPACE"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = do(t, h, http.MethodPost, "/v1/resources", &admin, `{"name":"Sofa","type":"COUCH"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, payload := do(t, h, http.MethodGet, "/v1/resources", &alice, "")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, data(t, payload)["total_data"])

	code, payload = do(t, h, http.MethodGet, "/v1/resources/2", &alice, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Conference room", data(t, payload)["type_name"])

	code, _ = do(t, h, http.MethodGet, "/v1/resources/9", &alice, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, h, http.MethodGet, "/v1/resources/abc", &alice, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, payload = do(t, h, http.MethodPatch, "/v1/resources/2", &admin, `{"name":"Hall"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hall", data(t, payload)["name"])

	code, _ = do(t, h, http.MethodPatch, "/v1/resources/9", &admin, `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, h, http.MethodPatch, "/v1/resources/2", &admin, `{"name":"Desk 1"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/resources/2", &alice, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/resources/2", &admin, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/resources/2", &admin, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBookings(t *testing.T) {
	h := setup(t)

	code, payload := do(t, h, http.MethodPost, "/v1/bookings", &alice,
		`{"resource_id":1,"date":"2024-06-22","start_time":"10:00","end_time":"12:00"}`)
	require.Equal(t, http.StatusCreated, code, payload)

	booking := data(t, payload)
	assert.EqualValues(t, 1, booking["id"])
	assert.Equal(t, "Desk 1", booking["resource_name"])
	assert.Equal(t, "2024-06-22 10:00", booking["start_time"])

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "overlap", body: `{"resource_id":1,"date":"2024-06-22","start_time":"11:00","end_time":"13:00"}`, wantCode: http.StatusConflict},
		{name: "same start", body: `{"resource_id":1,"date":"2024-06-22","start_time":"10:00","end_time":"10:30"}`, wantCode: http.StatusConflict},
		{name: "past date", body: `{"resource_id":1,"date":"2024-06-19","start_time":"10:00","end_time":"11:00"}`, wantCode: http.StatusBadRequest},
		{name: "before opening", body: `{"resource_id":1,"date":"2024-06-22","start_time":"08:00","end_time":"11:00"}`, wantCode: http.StatusBadRequest},
		{name: "after closing", body: `{"resource_id":1,"date":"2024-06-22","start_time":"18:00","end_time":"19:30"}`, wantCode: http.StatusBadRequest},
		{name: "end before start", body: `{"resource_id":1,"date":"2024-06-22","start_time":"15:00","end_time":"14:00"}`, wantCode: http.StatusBadRequest},
		{name: "bad clock", body: `{"resource_id":1,"date":"2024-06-22","start_time":"10am","end_time":"11:00"}`, wantCode: http.StatusBadRequest},
		{name: "unknown resource", body: `{"resource_id":9,"date":"2024-06-22","start_time":"10:00","end_time":"11:00"}`, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, payload := do(t, h, http.MethodPost, "/v1/bookings", &bob, tt.body)
			assert.Equal(t, tt.wantCode, code, payload)
		})
	}

	code, _ = do(t, h, http.MethodPost, "/v1/bookings", &bob,
		`{"resource_id":1,"date":"2024-06-22","start_time":"12:00","end_time":"13:00"}`)
	assert.Equal(t, http.StatusCreated, code, "back-to-back booking is accepted")

	code, payload = do(t, h, http.MethodGet, "/v1/resources/1/slots?date=2024-06-22", &alice, "")
	require.Equal(t, http.StatusOK, code)

	slots, ok := data(t, payload)["slots"].([]any)
	require.True(t, ok)
	require.Len(t, slots, 2)
	assert.Equal(t, "c 09:00 до 10:00", slots[0].(map[string]any)["label"])
	assert.Equal(t, "c 13:00 до 19:00", slots[1].(map[string]any)["label"])

	code, _ = do(t, h, http.MethodGet, "/v1/resources/1/slots?date=22-06-2024", &alice, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, payload = do(t, h, http.MethodGet, "/v1/resources/1/availability?start=2024-06-22+12:00&end=2024-06-22+14:00", &alice, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, data(t, payload)["available"])

	code, payload = do(t, h, http.MethodGet, "/v1/resources/1/availability?start=2024-06-22+13:00&end=2024-06-22+14:00", &alice, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, data(t, payload)["available"])

	code, _ = do(t, h, http.MethodGet, "/v1/resources/1/availability?start=2024-06-22+14:00&end=2024-06-22+13:00", &alice, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, payload = do(t, h, http.MethodGet, "/v1/bookings/mine", &bob, "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, data(t, payload)["total_data"])

	code, _ = do(t, h, http.MethodGet, "/v1/bookings", &alice, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, payload = do(t, h, http.MethodGet, "/v1/bookings?sort=user", &admin, "")
	require.Equal(t, http.StatusOK, code)

	list, ok := data(t, payload)["bookings"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].(map[string]any)["username"])

	code, payload = do(t, h, http.MethodGet, "/v1/bookings?sort=user&limit=1&page=2", &admin, "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, data(t, payload)["total_data"])

	list, ok = data(t, payload)["bookings"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].(map[string]any)["username"])

	code, payload = do(t, h, http.MethodGet, "/v1/bookings?resource_id=2", &admin, "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, data(t, payload)["total_data"])

	code, _ = do(t, h, http.MethodGet, "/v1/bookings?sort=size", &admin, "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodGet, "/v1/bookings/1", &bob, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, h, http.MethodGet, "/v1/bookings/1", &alice, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/resources/1", &admin, "")
	assert.Equal(t, http.StatusConflict, code, "booked resources cannot be deleted")

	code, _ = do(t, h, http.MethodDelete, "/v1/bookings/1", &bob, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/bookings/1", &alice, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/bookings/2", &admin, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/bookings/2", &admin, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, h, http.MethodDelete, "/v1/resources/1", &admin, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestServe_Cancelled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"

	otel := mocks.NewOtel()
	users := userService.New(userRepo.New(otel), otel)

	r := router.New(cfg, router.DomainHandlers{},
		middleware.NewAppMiddleware(otel, cfg, cache.NewNoop()),
		middleware.NewAuthRoleMiddleware(users, otel, permissions.Get()))

	server := transport.New(cfg, r)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- server.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, transport.ServerStateInCleanupPeriod, server.State())
}
