package config

const (
	ProviderNone       = "none"
	ProviderOpenRouter = "openrouter"
	ProviderLMStudio   = "lmstudio"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOllama     = "ollama"
)

type ProviderInfo struct {
	ID             string
	Name           string
	Description    string
	NeedsAPIKey    bool
	SignupURL      string
	Models         []string
	DefaultModel   string
	DefaultBaseURL string
}

var Providers = []ProviderInfo{
	{
		ID:          ProviderNone,
		Name:        "None",
		Description: "Local rules only",
	},
	{
		ID:           ProviderOpenRouter,
		Name:         "OpenRouter",
		Description:  "Access all models",
		NeedsAPIKey:  true,
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"anthropic/claude-sonnet-4-5-20250929", "google/gemini-2.0-flash-001", "openai/gpt-4o-mini", "mistralai/mistral-large-latest"},
		DefaultModel: "anthropic/claude-sonnet-4-5-20250929",
	},
	{
		ID:             ProviderLMStudio,
		Name:           "LM Studio",
		Description:    "Local server, OpenAI compatible",
		DefaultBaseURL: "http://localhost:1234/v1",
	},
	{
		ID:           ProviderOpenAI,
		Name:         "OpenAI",
		Description:  "GPT-4o",
		NeedsAPIKey:  true,
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o-mini", "gpt-4o"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           ProviderAnthropic,
		Name:         "Anthropic",
		Description:  "Claude",
		NeedsAPIKey:  true,
		SignupURL:    "https://console.anthropic.com/",
		Models:       []string{"claude-sonnet-4-5-20250929", "claude-haiku-4-5-20251001"},
		DefaultModel: "claude-sonnet-4-5-20250929",
	},
	{
		ID:             ProviderOllama,
		Name:           "Ollama",
		Description:    "Local, free, private",
		Models:         []string{"llama3.1:8b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel:   "llama3.1:8b",
		DefaultBaseURL: "http://localhost:11434",
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Ready reports whether the AI config can reach a remote provider.
// Keyed providers need an API key; local servers do not.
func (a AIConfig) Ready() bool {
	p := GetProvider(a.Provider)
	if p == nil || p.ID == ProviderNone {
		return false
	}
	if p.NeedsAPIKey && a.APIKey == "" {
		return false
	}
	return true
}
