package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("UPLOAD_MAX_SIZE", "")
	t.Setenv("JWT_EXPIRATION", "")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, time.Hour, cfg.Auth.EmailExpiration)
	assert.Equal(t, int64(2*1024*1024), cfg.Upload.MaxSize)
	assert.Error(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "session")
	t.Setenv("EMAIL_SECRET", "email")
	t.Setenv("JWT_EXPIRATION", "30m")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Auth.JWTExpiration)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_SameSecrets(t *testing.T) {
	cfg := &Config{Auth: AuthConfig{JWTSecret: "same", EmailSecret: "same"}}
	assert.Error(t, cfg.Validate())
}
