package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_MAX_REQUEST", "not-a-number")

	cfg := NewInternalConfig()

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 100, cfg.App.MaxRequests)
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("MONGODB_DB_NAME", "clinic")

	cfg := NewDriverConfig()

	assert.Equal(t, 3, cfg.Redis.DB)
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "clinic", cfg.MongoDB.DbName)
}

func TestNewDriverConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("REDIS_DB", "three")

	assert.Equal(t, 0, NewDriverConfig().Redis.DB)
}
