package llm

type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(apiKey, model string) *OpenRouterProvider {
	if model == "" {
		model = "anthropic/claude-sonnet-4-5-20250929"
	}
	p := newOpenAICompatible("OpenRouter", "https://openrouter.ai/api/v1", apiKey, model)
	p.headers["HTTP-Referer"] = "https://pix3lprompt.app"
	p.headers["X-Title"] = "Pix3lPrompt"
	return &OpenRouterProvider{OpenAIProvider: p}
}

func (o *OpenRouterProvider) Name() string {
	return "openrouter"
}
