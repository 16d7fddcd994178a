package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_GLOBAL_THRESHOLD", "not-a-number")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 300, cfg.RateLimitGlobalThreshold)
	assert.True(t, cfg.DBAutoMigrate)
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " https://a.example/ , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvList("ALLOWED_ORIGINS", nil))

	t.Setenv("ALLOWED_ORIGINS", " , ")
	assert.Equal(t, []string{"x"}, getEnvList("ALLOWED_ORIGINS", []string{"x"}))
}

func TestConfiguredHelpers(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.SMTPConfigured())
	assert.False(t, cfg.StorageConfigured())

	cfg.SMTPHost, cfg.SMTPUsername, cfg.SMTPPassword = "smtp.example", "u", "p"
	cfg.S3Bucket, cfg.S3AccessKeyID, cfg.S3SecretAccessKey = "bucket", "id", "secret"
	assert.True(t, cfg.SMTPConfigured())
	assert.True(t, cfg.StorageConfigured())
}
