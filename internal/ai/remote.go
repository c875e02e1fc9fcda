package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sant0-9/pix3lprompt/internal/llm"
	"github.com/sant0-9/pix3lprompt/internal/prompts"
)

var trailingFlags = regexp.MustCompile(`(?i)\s*--[a-z]\S*.*$`)

// StripModelFlags removes a trailing run of --flag parameters a model may
// have added, e.g. "fox, snow --ar 16:9 --v 7" becomes "fox, snow".
func StripModelFlags(text string) string {
	return strings.TrimSpace(trailingFlags.ReplaceAllString(strings.TrimSpace(text), ""))
}

// Remote adapts a chat completion backend to the Provider interface
type Remote struct {
	name   string
	client llm.Provider
	model  string
}

func NewRemote(name string, client llm.Provider, model string) *Remote {
	if name == "" {
		name = client.Name()
	}
	return &Remote{name: name, client: client, model: model}
}

func (r *Remote) Name() string {
	return r.name
}

func (r *Remote) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *Remote) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := r.client.Complete(ctx, llm.NewRequest(r.model, system, user))
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (r *Remote) Optimize(ctx context.Context, prompt string, pc PromptContext) (string, error) {
	system := prompts.BuildOptimizePrompt(pc.TargetModel, preferences(pc))
	out, err := r.complete(ctx, system, prompts.OptimizeUser(prompt))
	if err != nil {
		return "", err
	}

	out = StripModelFlags(out)
	if out == "" {
		return "", fmt.Errorf("%s returned an empty prompt", r.name)
	}
	return out, nil
}

func (r *Remote) GenerateVariations(ctx context.Context, prompt string, count int, pc PromptContext) ([]string, error) {
	system := prompts.BuildVariationsPrompt(pc.TargetModel, count)
	out, err := r.complete(ctx, system, prompts.VariationsUser(prompt, count))
	if err != nil {
		return nil, err
	}

	var variations []string
	for _, v := range strings.Split(out, "---") {
		if count > 0 && len(variations) == count {
			break
		}
		if v = StripModelFlags(v); v != "" {
			variations = append(variations, v)
		}
	}
	if len(variations) == 0 {
		return nil, fmt.Errorf("%s returned no variations", r.name)
	}
	return variations, nil
}

// SuggestImprovements asks for a JSON array. A reply that does not parse is
// returned as a single modify suggestion holding the raw text.
func (r *Remote) SuggestImprovements(ctx context.Context, prompt string, rating int, notes string) ([]Suggestion, error) {
	out, err := r.complete(ctx, prompts.Suggest, prompts.SuggestUser(prompt, rating, notes))
	if err != nil {
		return nil, err
	}
	return parseSuggestions(out), nil
}

func parseSuggestions(raw string) []Suggestion {
	content := stripCodeFence(strings.TrimSpace(raw))

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil || suggestions == nil {
		return []Suggestion{{
			Type:       SuggestModify,
			Target:     "prompt",
			Suggestion: raw,
			Reason:     "unparseable response",
		}}
	}
	return suggestions
}

// stripCodeFence unwraps a ```json block if the model added one
func stripCodeFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}

	var lines []string
	in := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			in = !in
			continue
		}
		if in {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func preferences(pc PromptContext) prompts.Preferences {
	prefs := prompts.Preferences{
		PreferredStyles: pc.PreferredStyles,
		AvoidKeywords:   pc.AvoidKeywords,
	}
	for _, r := range pc.PreviousRatings {
		prefs.PreviousRatings = append(prefs.PreviousRatings, prompts.Rated{
			Prompt: r.Prompt,
			Rating: r.Rating,
			Notes:  r.Notes,
		})
	}
	return prefs
}
