package ai

import "context"

// Provider rewrites and critiques content-only prompt text.
// Implementations never return model control flags.
type Provider interface {
	Name() string
	Optimize(ctx context.Context, prompt string, pc PromptContext) (string, error)
	GenerateVariations(ctx context.Context, prompt string, count int, pc PromptContext) ([]string, error)
	SuggestImprovements(ctx context.Context, prompt string, rating int, notes string) ([]Suggestion, error)
}

// PromptContext is what a provider knows about the user and the target
type PromptContext struct {
	TargetModel     string
	PreviousRatings []RatedPrompt
	PreferredStyles []string
	AvoidKeywords   []string
}

type RatedPrompt struct {
	Prompt string
	Rating int
	Notes  string
}

type SuggestionType string

const (
	SuggestAdd    SuggestionType = "add"
	SuggestRemove SuggestionType = "remove"
	SuggestModify SuggestionType = "modify"
)

type Suggestion struct {
	Type       SuggestionType `json:"type"`
	Target     string         `json:"target"`
	Suggestion string         `json:"suggestion"`
	Reason     string         `json:"reason"`
}
