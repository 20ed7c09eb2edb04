package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthcare-service/internal/pkg/constvars"
	"healthcare-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthController(t *testing.T) {
	up := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("dial tcp: connection refused") }

	t.Run("All Components Up", func(t *testing.T) {
		ctrl := NewHealthController(zap.NewNop(), "v1", map[string]HealthCheck{
			constvars.HealthComponentMongoDB: up,
			constvars.HealthComponentRedis:   up,
		}, time.Second)
		rec := httptest.NewRecorder()

		ctrl.CheckHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var envelope testEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		var health responses.Health
		require.NoError(t, json.Unmarshal(envelope.Data, &health))
		assert.Equal(t, "UP", health.Status)
		assert.Equal(t, "v1", health.Version)
		assert.Equal(t, map[string]string{"mongodb": "UP", "redis": "UP"}, health.Components)
	})

	t.Run("Component Down", func(t *testing.T) {
		ctrl := NewHealthController(zap.NewNop(), "v1", map[string]HealthCheck{
			constvars.HealthComponentMongoDB: up,
			constvars.HealthComponentRedis:   down,
		}, time.Second)
		rec := httptest.NewRecorder()

		ctrl.CheckHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var envelope testEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		assert.Equal(t, constvars.ErrClientServiceUnavailable, envelope.Message)
	})

	t.Run("Checks Share The Timeout", func(t *testing.T) {
		var deadlineSet bool
		ctrl := NewHealthController(zap.NewNop(), "v1", map[string]HealthCheck{
			constvars.HealthComponentMongoDB: func(ctx context.Context) error {
				_, deadlineSet = ctx.Deadline()
				return nil
			},
		}, time.Second)

		ctrl.CheckHealth(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.True(t, deadlineSet)
	})
}
