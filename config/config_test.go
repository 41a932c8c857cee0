package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, []string{BackendFile, BackendKV, BackendDB}, cfg.Storage.Backends)
	assert.Equal(t, "parsed_resumes", cfg.Storage.KVKey)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, "mock", cfg.Feedback.Provider)
}

func TestLoadStorageBackendsOrder(t *testing.T) {
	cfg, err := Load(newViper(map[string]any{"STORAGE_BACKENDS": " DB , file "}))
	require.NoError(t, err)

	assert.Equal(t, []string{BackendDB, BackendFile}, cfg.Storage.Backends)
	assert.True(t, cfg.Storage.HasBackend(BackendDB))
	assert.False(t, cfg.Storage.HasBackend(BackendKV))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]any{
		"driver":    {"DATABASE_DRIVER": "mysql"},
		"backend":   {"STORAGE_BACKENDS": "file,s3"},
		"empty":     {"STORAGE_BACKENDS": " , "},
		"kv":        {"KV_DRIVER": "memcached"},
		"provider":  {"FEEDBACK_PROVIDER": "openai"},
		"max bytes": {"UPLOAD_MAX_BYTES": 0},
	}
	for name, overrides := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(newViper(overrides))
			assert.Error(t, err)
		})
	}
}
