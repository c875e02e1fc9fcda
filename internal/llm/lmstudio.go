package llm

const defaultLMStudioURL = "http://localhost:1234/v1"

// LMStudioProvider is a local OpenAI compatible server. The API key is optional.
type LMStudioProvider struct {
	*OpenAIProvider
}

func NewLMStudioProvider(baseURL, apiKey, model string) *LMStudioProvider {
	if baseURL == "" {
		baseURL = defaultLMStudioURL
	}
	return &LMStudioProvider{
		OpenAIProvider: newOpenAICompatible("LM Studio", baseURL, apiKey, model),
	}
}

func (l *LMStudioProvider) Name() string {
	return "lmstudio"
}
