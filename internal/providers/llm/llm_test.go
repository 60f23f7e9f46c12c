package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/sessionnotes/internal/providers"
)

func TestOpenAIChatCompleteJSON(t *testing.T) {
	var req struct {
		Model          string  `json:"model"`
		Temperature    float32 `json:"temperature"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"summary\":\"ok\"}"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat(providers.NewOpenAIClient("sk-test", srv.URL+"/v1"), "")
	out, err := c.CompleteJSON(context.Background(), "system rules", "the transcript")
	require.NoError(t, err)

	assert.Equal(t, `{"summary":"ok"}`, out)
	assert.Equal(t, "gpt-4.1-mini", req.Model)
	assert.InDelta(t, 0.2, req.Temperature, 0.0001)
	assert.Equal(t, "json_object", req.ResponseFormat.Type)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, "system rules", req.Messages[0].Content)
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, "the transcript", req.Messages[1].Content)
}

func TestOpenAIChatNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIChat(providers.NewOpenAIClient("sk-test", srv.URL+"/v1"), "gpt-4.1-mini")
	_, err := c.CompleteJSON(context.Background(), "s", "u")
	require.Error(t, err)
}

func TestCollectText(t *testing.T) {
	resp := &vertexgenai.GenerateContentResponse{
		Candidates: []*vertexgenai.Candidate{
			{Content: nil},
			{Content: &vertexgenai.Content{Parts: []vertexgenai.Part{
				vertexgenai.Text(`{"summary":`),
				vertexgenai.Text(`"ok"}`),
			}}},
		},
	}
	assert.Equal(t, `{"summary":"ok"}`, collectText(resp))
}
