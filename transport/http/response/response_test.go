package response_test

import (
	"coworking/shared/constant"
	"coworking/shared/failure"
	"coworking/transport/http/response"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.JSONEq(t, `{"data":{"id":1}}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "failure", err: failure.Conflict("taken"), wantCode: http.StatusConflict, wantBody: `{"error":"taken"}`},
		{name: "not found", err: failure.NotFound("resource 9 not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"resource 9 not found"}`},
		{name: "plain error is hidden", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestWithUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithUnauthorized(rec, failure.InvalidCredentials, `Basic realm="coworking"`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Basic realm="coworking"`, rec.Header().Get(constant.RequestHeaderWWWAuthenticate))
	assert.JSONEq(t, `{"error":"invalid username or password"}`, rec.Body.String())
}
