package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("OPENROUTER_API_KEY", "test-api-key")
	os.Setenv("AI_MODEL", "deepseek/deepseek-chat")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "test-api-key", cfg.OpenRouterAPIKey)
	assert.Equal(t, "deepseek/deepseek-chat", cfg.AIModel)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("OPENROUTER_API_KEY")
	os.Unsetenv("AI_MODEL")
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("OPENROUTER_BASE_URL")
	os.Unsetenv("MAX_UPLOAD_SIZE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", cfg.OpenRouterBaseURL)
	assert.Equal(t, int64(10485760), cfg.MaxUploadSize)
}

func TestLoadConfig_InvalidMaxUploadSize(t *testing.T) {
	os.Setenv("MAX_UPLOAD_SIZE", "not-a-number")
	defer os.Unsetenv("MAX_UPLOAD_SIZE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, int64(10485760), cfg.MaxUploadSize)
}
