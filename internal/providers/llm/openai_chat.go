package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIChat struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIChat(client *openai.Client, model string) *OpenAIChat {
	if model == "" {
		model = "gpt-4.1-mini"
	}
	return &OpenAIChat{client: client, model: model, temperature: 0.2}
}

func (o *OpenAIChat) Close() error { return nil }

func (o *OpenAIChat) CompleteJSON(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
