package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate generates a completion for the given prompts.
func (o *openaiImpl) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := Request{
		Model:       o.model,
		Temperature: DefaultTemperature,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	}

	body, statusCode, err := o.httpClient.Post(ctx, BaseURL, req, headers)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal OpenAI response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
