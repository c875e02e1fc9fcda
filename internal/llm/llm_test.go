package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/pix3lprompt/internal/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.AIConfig
		wantName string
		wantErr  bool
	}{
		{"openai", config.AIConfig{Provider: "openai", APIKey: "k"}, "openai", false},
		{"openai no key", config.AIConfig{Provider: "openai"}, "", true},
		{"anthropic", config.AIConfig{Provider: "anthropic", APIKey: "k"}, "anthropic", false},
		{"anthropic no key", config.AIConfig{Provider: "anthropic"}, "", true},
		{"openrouter", config.AIConfig{Provider: "openrouter", APIKey: "k"}, "openrouter", false},
		{"openrouter no key", config.AIConfig{Provider: "openrouter"}, "", true},
		{"lmstudio no key", config.AIConfig{Provider: "lmstudio"}, "lmstudio", false},
		{"ollama", config.AIConfig{Provider: "ollama"}, "ollama", false},
		{"none", config.AIConfig{Provider: "none"}, "", true},
		{"unknown", config.AIConfig{Provider: "groq", APIKey: "k"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}

func TestOpenAICompatibleComplete(t *testing.T) {
	var gotAuth, gotTitle string
	var gotReq openAIRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotTitle = r.Header.Get("X-Title")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"a fox"},"finish_reason":"stop"}],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
	}))
	defer srv.Close()

	p := NewOpenRouterProvider("secret", "some/model")
	p.WithBaseURL(srv.URL + "/v1/")

	resp, err := p.Complete(context.Background(), NewRequest("", "sys", "user"))
	require.NoError(t, err)

	assert.Equal(t, "a fox", resp.Content)
	assert.Equal(t, 5, resp.Usage.TotalTokens)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "Pix3lPrompt", gotTitle)
	assert.Equal(t, "some/model", gotReq.Model)
	assert.Equal(t, 2000, gotReq.MaxTokens)
	assert.Equal(t, 0.7, gotReq.Temperature)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
}

func TestLMStudioOmitsAuthWithoutKey(t *testing.T) {
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	p := NewLMStudioProvider(srv.URL+"///", "", "local-model")
	_, err := p.Complete(context.Background(), NewRequest("", "s", "u"))
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestAPIErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"nested message", `{"error":{"message":"rate limited"}}`, "OpenAI error (status 429): rate limited"},
		{"flat string", `{"error":"bad key"}`, "OpenAI error (status 429): bad key"},
		{"plain body", `overloaded`, "OpenAI error (status 429): overloaded"},
		{"empty body", ``, "OpenAI API error: status 429"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewOpenAIProvider("k", "").WithBaseURL(srv.URL)
			_, err := p.Complete(context.Background(), NewRequest("", "s", "u"))
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestAnthropicComplete(t *testing.T) {
	var gotReq anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"hello"}],"stop_reason":"end_turn","usage":{"input_tokens":4,"output_tokens":1}}`))
	}))
	defer srv.Close()

	p := NewAnthropicProvider("k", "").WithBaseURL(srv.URL)
	resp, err := p.Complete(context.Background(), NewRequest("", "be terse", "hi"))
	require.NoError(t, err)

	assert.Equal(t, "hello", resp.Content)
	assert.Equal(t, 5, resp.Usage.TotalTokens)
	assert.Equal(t, "be terse", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
}

func TestAnthropicPing(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{http.StatusOK, false},
		{http.StatusBadRequest, false},
		{http.StatusTooManyRequests, false},
		{http.StatusUnauthorized, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewAnthropicProvider("k", "").WithBaseURL(srv.URL).Ping(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOllamaComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		_, _ = w.Write([]byte(`{"model":"llama3.1:8b","message":{"role":"assistant","content":"fox"},"done":true,"prompt_eval_count":2,"eval_count":1}`))
	}))
	defer srv.Close()

	resp, err := NewOllamaProvider(srv.URL, "").Complete(context.Background(), NewRequest("", "s", "u"))
	require.NoError(t, err)
	assert.Equal(t, "fox", resp.Content)
	assert.Equal(t, 3, resp.Usage.TotalTokens)
}
