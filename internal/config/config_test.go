package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	obtained := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	cfg := DefaultConfig()
	cfg.AI = AIConfig{Provider: ProviderLMStudio, Model: "qwen", BaseURL: "http://localhost:1234/v1"}
	cfg.Board = &BoardConfig{URL: "https://board.example.com", Token: "t", TokenObtainedAt: obtained, UserEmail: "a@b.c"}
	cfg.Editor.AvoidKeywords = []string{"text"}
	require.NoError(t, cfg.SaveTo(path))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cfg.AI, got.AI)
	require.NotNil(t, got.Board)
	assert.True(t, obtained.Equal(got.Board.TokenObtainedAt))
	assert.Equal(t, []string{"text"}, got.Editor.AvoidKeywords)
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PIX3L_CONFIG_DIR", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
	assert.False(t, Exists())

	require.NoError(t, DefaultConfig().Save())
	assert.True(t, Exists())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PIX3L_PROVIDER", "OpenAI")
	t.Setenv("PIX3L_API_KEY", "sk-test")
	t.Setenv("PIX3L_MODEL", "")
	t.Setenv("PIX3L_LOG_LEVEL", "DEBUG")

	cfg := DefaultConfig()
	cfg.AI.Model = "gpt-4o"
	cfg.ApplyEnv()

	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestAIConfigReady(t *testing.T) {
	tests := []struct {
		name string
		cfg  AIConfig
		want bool
	}{
		{"none", AIConfig{Provider: ProviderNone, APIKey: "x"}, false},
		{"empty", AIConfig{}, false},
		{"unknown", AIConfig{Provider: "groq", APIKey: "x"}, false},
		{"openrouter without key", AIConfig{Provider: ProviderOpenRouter}, false},
		{"openrouter with key", AIConfig{Provider: ProviderOpenRouter, APIKey: "k"}, true},
		{"anthropic without key", AIConfig{Provider: ProviderAnthropic}, false},
		{"lmstudio without key", AIConfig{Provider: ProviderLMStudio}, true},
		{"ollama without key", AIConfig{Provider: ProviderOllama}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Ready())
		})
	}
}

func TestGetProvider(t *testing.T) {
	p := GetProvider(ProviderLMStudio)
	require.NotNil(t, p)
	assert.Equal(t, "http://localhost:1234/v1", p.DefaultBaseURL)
	assert.False(t, p.NeedsAPIKey)

	assert.Nil(t, GetProvider("groq"))
}
