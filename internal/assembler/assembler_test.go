package assembler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sant0-9/pix3lprompt/internal/model"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

func TestContent(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{
			name: "empty",
			in:   Input{},
			want: "",
		},
		{
			name: "subject only trimmed",
			in:   Input{Subject: "  a red fox  "},
			want: "a red fox",
		},
		{
			name: "categories in fixed order",
			in: Input{
				Subject: "a red fox",
				Chips: map[preset.Category][]string{
					preset.Mood:     {"dreamy"},
					preset.Style:    {"anime", "cinematic"},
					preset.Lighting: {"golden-hour"},
				},
				Details: "snow",
			},
			want: "a red fox, Anime, Cinematic, Golden Hour, Dreamy, snow",
		},
		{
			name: "unknown chip shows raw id",
			in: Input{
				Chips: map[preset.Category][]string{
					preset.Style: {"claymation"},
				},
			},
			want: "claymation",
		},
		{
			name: "empty category adds no separator",
			in: Input{
				Subject: "fox",
				Chips: map[preset.Category][]string{
					preset.Style:   {},
					preset.Quality: {"8k"},
				},
			},
			want: "fox, 8K",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Content(tt.in))
		})
	}
}

func TestAssemble(t *testing.T) {
	base := Input{
		Subject:     "a red fox",
		Chips:       map[preset.Category][]string{preset.Style: {"cinematic"}},
		AspectRatio: "16:9",
	}

	tests := []struct {
		name  string
		model string
		neg   string
		want  string
	}{
		{"bracket flags", "midjourney-v7", "", "a red fox, Cinematic --ar 16:9 --v 7"},
		{"bracket flags with negative", "midjourney-v6.1", " text ", "a red fox, Cinematic --ar 16:9 --v 6.1 --no text"},
		{"plain", "flux-pro", "blurry", "a red fox, Cinematic 16:9 Negative prompt: blurry"},
		{"dall-e negative", "dall-e-3", "blurry", "a red fox, Cinematic 16:9 I don't want: blurry"},
		{"audio has no trailer", "suno-v4", "vocals", "a red fox, Cinematic"},
		{"unknown model uses default", "gone", "", "a red fox, Cinematic --ar 16:9 --v 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.NegativePrompt = tt.neg
			got := Assemble(in, model.Get(tt.model))
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, len(tt.want), got.CharCount)
		})
	}
}

func TestAssembleBracketTrailerOnce(t *testing.T) {
	in := Input{Subject: "fox", AspectRatio: "16:9"}
	got := Assemble(in, model.Get("midjourney-v7")).Text

	assert.Equal(t, 1, strings.Count(got, "--ar 16:9"))
	assert.Less(t, strings.Index(got, "--ar 16:9"), strings.Index(got, "--v 7"))
}

func TestAssembleDalleHasNoFlag(t *testing.T) {
	in := Input{Subject: "fox", AspectRatio: "1:1", NegativePrompt: "blurry"}
	got := Assemble(in, model.Get("dall-e-3")).Text

	assert.Contains(t, got, "I don't want: blurry")
	assert.NotContains(t, got, "--no")
}

func TestAssembleEmptyState(t *testing.T) {
	got := Assemble(Input{AspectRatio: preset.DefaultAspectRatio}, model.Get(model.DefaultID))

	assert.Equal(t, "", got.Text)
	assert.Equal(t, 0, got.CharCount)
	assert.Equal(t, 1, got.TokenEstimate)
}

func TestAssembleIsPure(t *testing.T) {
	in := Input{
		Subject: "fox",
		Chips: map[preset.Category][]string{
			preset.Lighting: {"neon-glow", "foggy"},
		},
		AspectRatio: "3:2",
	}
	cfg := model.Get("sdxl")

	first := Assemble(in, cfg)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Assemble(in, cfg))
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"a", 1},
		{"abcdef", 2},
		{"abcdefghij", 3},
		{strings.Repeat("x", 400), 100},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateTokens(tt.text))
		})
	}
}
