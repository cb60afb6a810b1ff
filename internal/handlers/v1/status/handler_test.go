package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fintrack/internal/logging"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func createTestLogData() *logging.LogData {
	logger := logging.SetupLogging("info")
	return logging.NewLogData(logger)
}

func TestHandler_GoodMethod(t *testing.T) {
	statusHandler := NewHandler(pingFunc(func(context.Context) error { return nil }))
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.NoError(t, err)

	res := w.Result()
	assert.Equal(t, 200, res.StatusCode)

	var body statusBody
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestHandler_NoDatabase(t *testing.T) {
	statusHandler := NewHandler(nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, httptest.NewRequest(http.MethodGet, "/status", nil), createTestLogData())
	assert.NoError(t, err)
	assert.Equal(t, 200, w.Code)
}

func TestHandler_DatabaseDown(t *testing.T) {
	statusHandler := NewHandler(pingFunc(func(context.Context) error { return errors.New("connection refused") }))
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, httptest.NewRequest(http.MethodGet, "/status", nil), createTestLogData())
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unreachable")
}

func TestHandler_BadMethod(t *testing.T) {
	statusHandler := NewHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.Error(t, err)

	res := w.Result()
	assert.Equal(t, 400, res.StatusCode)
}
