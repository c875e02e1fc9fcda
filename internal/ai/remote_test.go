package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/pix3lprompt/internal/llm"
)

type fakeClient struct {
	content string
	err     error
	last    *llm.CompletionRequest
}

func (f *fakeClient) Name() string { return "fake" }

func (f *fakeClient) Ping(context.Context) error { return f.err }

func (f *fakeClient) Complete(_ context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content}, nil
}

func TestStripModelFlags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"fox, snow --ar 16:9 --v 7", "fox, snow"},
		{"fox, snow", "fox, snow"},
		{"  fox, snow  ", "fox, snow"},
		{"fox --NO text", "fox"},
		{"well-lit fox", "well-lit fox"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripModelFlags(tt.in))
		})
	}
}

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Suggestion
	}{
		{
			name: "plain json",
			raw:  `[{"type":"add","target":"lighting","suggestion":"add rim light","reason":"flat"}]`,
			want: []Suggestion{{Type: SuggestAdd, Target: "lighting", Suggestion: "add rim light", Reason: "flat"}},
		},
		{
			name: "fenced json",
			raw:  "```json\n[{\"type\":\"remove\",\"target\":\"style\",\"suggestion\":\"drop anime\",\"reason\":\"clash\"}]\n```",
			want: []Suggestion{{Type: SuggestRemove, Target: "style", Suggestion: "drop anime", Reason: "clash"}},
		},
		{
			name: "prose",
			raw:  "Try adding more light.",
			want: []Suggestion{{Type: SuggestModify, Target: "prompt", Suggestion: "Try adding more light.", Reason: "unparseable response"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSuggestions(tt.raw))
		})
	}
}

func TestRemoteOptimize(t *testing.T) {
	client := &fakeClient{content: "red fox in snow, golden hour --ar 16:9 --v 7"}
	r := NewRemote("OpenAI", client, "gpt-4o-mini")

	got, err := r.Optimize(context.Background(), "fox, snow", PromptContext{
		TargetModel:     "Midjourney v7",
		PreferredStyles: []string{"cinematic"},
	})
	require.NoError(t, err)
	assert.Equal(t, "red fox in snow, golden hour", got)

	require.NotNil(t, client.last)
	assert.Equal(t, "gpt-4o-mini", client.last.Model)
	require.Len(t, client.last.Messages, 2)
	assert.Contains(t, client.last.Messages[0].Content, "Midjourney v7")
	assert.Contains(t, client.last.Messages[0].Content, "cinematic")
	assert.Equal(t, "Optimize this prompt:\n\nfox, snow", client.last.Messages[1].Content)

	t.Run("only flags", func(t *testing.T) {
		_, err := NewRemote("OpenAI", &fakeClient{content: "--ar 16:9"}, "m").Optimize(context.Background(), "fox", PromptContext{})
		assert.Error(t, err)
	})

	t.Run("client error", func(t *testing.T) {
		_, err := NewRemote("OpenAI", &fakeClient{err: errors.New("boom")}, "m").Optimize(context.Background(), "fox", PromptContext{})
		assert.EqualError(t, err, "boom")
	})
}

func TestRemoteVariations(t *testing.T) {
	client := &fakeClient{content: "fox at dawn --v 7\n---\nfox at dusk\n---\n\n---\nfox in rain --ar 1:1"}
	r := NewRemote("", client, "m")
	assert.Equal(t, "fake", r.Name())

	got, err := r.GenerateVariations(context.Background(), "fox", 4, PromptContext{TargetModel: "SDXL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fox at dawn", "fox at dusk", "fox in rain"}, got)
	assert.Equal(t, "Generate 4 variations of:\n\nfox", client.last.Messages[1].Content)

	got, err = r.GenerateVariations(context.Background(), "fox", 2, PromptContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"fox at dawn", "fox at dusk"}, got)

	_, err = NewRemote("x", &fakeClient{content: "---\n---"}, "m").GenerateVariations(context.Background(), "fox", 4, PromptContext{})
	assert.Error(t, err)
}

func TestRemoteSuggest(t *testing.T) {
	client := &fakeClient{content: "not json"}
	r := NewRemote("Ollama", client, "llama3.1:8b")

	got, err := r.SuggestImprovements(context.Background(), "fox", 2, "blurry")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, SuggestModify, got[0].Type)
	assert.Equal(t, "not json", got[0].Suggestion)
	assert.Equal(t, "Prompt: fox\nRating: 2/5\nNotes: blurry\n\nSuggest improvements.", client.last.Messages[1].Content)
}
