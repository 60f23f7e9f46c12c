// Package providers holds the adapters to external AI services.
package providers

import (
	openai "github.com/sashabaranov/go-openai"
)

// NewOpenAIClient builds the client shared by the OpenAI adapters. baseURL is
// optional and mostly useful for proxies and tests.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}
