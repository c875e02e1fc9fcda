package assembler

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/sant0-9/pix3lprompt/internal/model"
	"github.com/sant0-9/pix3lprompt/internal/preset"
)

// Input is the editor data a prompt is built from
type Input struct {
	Subject        string
	Chips          map[preset.Category][]string
	AspectRatio    string
	Details        string
	NegativePrompt string
}

// Result is a fully assembled prompt and its metrics
type Result struct {
	Text          string
	CharCount     int
	TokenEstimate int
}

// Content builds the user-authored part of the prompt, without any
// model control flags. This is the only text sent to AI providers.
func Content(in Input) string {
	var parts []string

	if s := strings.TrimSpace(in.Subject); s != "" {
		parts = append(parts, s)
	}

	for _, c := range preset.Categories() {
		ids := in.Chips[c]
		if len(ids) == 0 {
			continue
		}
		labels := make([]string, 0, len(ids))
		for _, id := range ids {
			label, ok := preset.Label(c, id)
			if !ok {
				label = id
			}
			labels = append(labels, label)
		}
		parts = append(parts, strings.Join(labels, ", "))
	}

	if d := strings.TrimSpace(in.Details); d != "" {
		parts = append(parts, d)
	}

	return strings.Join(parts, ", ")
}

// Assemble appends the model trailer (aspect ratio, suffix, negative) to the content.
// A prompt with no content gets no trailer.
func Assemble(in Input, cfg model.Config) Result {
	content := Content(in)
	if content == "" {
		return Result{TokenEstimate: estimate(0)}
	}

	var b strings.Builder
	b.WriteString(content)

	appendPart := func(s string) {
		if s == "" {
			return
		}
		b.WriteString(" ")
		b.WriteString(s)
	}

	if cfg.ARFormat != nil {
		appendPart(cfg.ARFormat(in.AspectRatio))
	}
	appendPart(cfg.Suffix)
	if cfg.NegFormat != nil {
		appendPart(cfg.NegFormat(strings.TrimSpace(in.NegativePrompt)))
	}

	text := b.String()
	n := utf8.RuneCountInString(text)
	return Result{
		Text:          text,
		CharCount:     n,
		TokenEstimate: estimate(n),
	}
}

// EstimateTokens approximates tokens at ~4 chars each, never below 1
func EstimateTokens(text string) int {
	return estimate(utf8.RuneCountInString(text))
}

func estimate(chars int) int {
	return max(1, int(math.Floor(float64(chars)/4+0.5)))
}
