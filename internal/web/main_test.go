package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uefisettings/uefisettings/internal/config"
)

type testStatus struct {
	Installed bool  `json:"installed"`
	Rows      int64 `json:"rows"`
}

func newTestService(t *testing.T, status StatusFunc, gatherer prometheus.Gatherer) *Service {
	t.Helper()

	return New(&config.Config{Webserver: config.Webserver{Port: 8080}}, status, gatherer)
}

func get(t *testing.T, s *Service, path string) (int, string) {
	t.Helper()

	resp, err := s.App.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNewPanics(t *testing.T) {
	assert.Panics(t, func() { New(nil, func(context.Context) (any, error) { return nil, nil }, nil) })
	assert.Panics(t, func() { New(&config.Config{}, nil, nil) })
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t, func(context.Context) (any, error) { return nil, nil }, nil)

	code, body := get(t, s, CheckAlivePath)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "OK", body)
	assert.True(t, s.Alive())

	s.alive.Store(false)

	code, _ = get(t, s, CheckAlivePath)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
}

func TestStatus(t *testing.T) {
	s := newTestService(t, func(context.Context) (any, error) {
		return testStatus{Installed: true, Rows: 3}, nil
	}, nil)

	code, body := get(t, s, StatusPath)
	require.Equal(t, fiber.StatusOK, code)

	var got testStatus
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, testStatus{Installed: true, Rows: 3}, got)
}

func TestStatusError(t *testing.T) {
	s := newTestService(t, func(context.Context) (any, error) {
		return nil, errors.New("database is locked")
	}, nil)

	code, body := get(t, s, StatusPath)
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.NotContains(t, body, "locked")
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "web_test_total", Help: "test counter"})
	reg.MustRegister(counter)
	counter.Add(2)

	s := newTestService(t, func(context.Context) (any, error) { return nil, nil }, reg)

	code, body := get(t, s, MetricsPath)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "web_test_total 2")
}

func TestShutdown(t *testing.T) {
	s := newTestService(t, func(context.Context) (any, error) { return nil, nil }, nil)
	require.True(t, s.fastShutDown, "zero shutdown time shuts down immediately")

	s.Shutdown()
	assert.False(t, s.Alive())
}
