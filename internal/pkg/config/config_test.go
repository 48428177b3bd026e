package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, StoreSQLite, cfg.Store.Driver)
	assert.Equal(t, "bemshell.db", cfg.Store.SQLitePath)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "device_session", cfg.Store.Mongo.Collection)
	assert.Equal(t, "bemshell", cfg.Store.Redis.Prefix)
	assert.Equal(t, 2, cfg.QueueWorkers)
	assert.Empty(t, cfg.Session.SealKey)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":               "production",
		"STORE_DRIVER":      "Redis",
		"REDIS_ADDR":        "cache:6379",
		"REDIS_DB":          "3",
		"BACKEND_URL":       "https://bem.example.org/api",
		"BACKEND_TIMEOUT":   "5s",
		"QUEUE_WORKERS":     "0",
		"DEVICE_PUSH_TOKEN": "ExponentPushToken[abc]",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, StoreRedis, cfg.Store.Driver)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 3, cfg.Store.Redis.DB)
	assert.Equal(t, "https://bem.example.org/api", cfg.Backend.URL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 1, cfg.QueueWorkers)
	assert.Equal(t, "ExponentPushToken[abc]", cfg.Device.PushToken)
	assert.Equal(t, "android", cfg.Device.Platform)
}

func TestLoadWith_Rejects(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown driver": {"STORE_DRIVER": "etcd"},
		"empty backend":  {"BACKEND_URL": " "},
		"bad timeout":    {"BACKEND_TIMEOUT": "soon"},
		"zero timeout":   {"BACKEND_TIMEOUT": "0s"},
		"non-numeric db": {"REDIS_DB": "one"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWith(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
