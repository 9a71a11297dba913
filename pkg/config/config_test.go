package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("MINIO_SECURE", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost:9000", cfg.Storage.Endpoint)
	assert.False(t, cfg.Storage.Secure)
	assert.Equal(t, int64(20<<20), cfg.Extraction.MaxUploadBytes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("MINIO_ENDPOINT", "https://s3.internal:9000")
	t.Setenv("MINIO_SECURE", "true")
	t.Setenv("GIGACHAT_INSECURE_SKIP_VERIFY", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "s3.internal:9000", cfg.Storage.Endpoint)
	assert.True(t, cfg.Storage.Secure)
	assert.False(t, cfg.GigaChat.InsecureSkipVerify)
}

func TestGetBool_Invalid(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	assert.True(t, getBool("SOME_FLAG", true))
}
