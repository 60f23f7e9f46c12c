package stt

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAIWhisper struct {
	client *openai.Client
	model  string
}

func NewOpenAIWhisper(client *openai.Client, model string) *OpenAIWhisper {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIWhisper{client: client, model: model}
}

func (w *OpenAIWhisper) Close() error { return nil }

func (w *OpenAIWhisper) Transcribe(ctx context.Context, audio Audio) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: uploadName(audio), // only used as the multipart filename when Reader is set
		Reader:   bytes.NewReader(audio.Data),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

// uploadName returns a filename whose extension tells Whisper the audio format.
// Names without one get it from the content type, or failing that from the
// bytes themselves.
func uploadName(a Audio) string {
	name := a.Filename
	if name == "" {
		name = "audio"
	}
	if path.Ext(name) != "" {
		return name
	}
	ct, _, _ := strings.Cut(a.ContentType, ";")
	m := mimetype.Lookup(strings.ToLower(strings.TrimSpace(ct)))
	if m == nil || m.Extension() == "" {
		m = mimetype.Detect(a.Data)
	}
	return name + m.Extension()
}
