package openai

const (
	// BaseURL is the OpenAI Chat Completions endpoint.
	BaseURL = "https://api.openai.com/v1/chat/completions"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"
	// DefaultTemperature matches the assistant's conversational tone.
	DefaultTemperature = 0.7
)
