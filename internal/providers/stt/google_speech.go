package stt

import (
	"context"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
)

type GoogleSpeech struct {
	c *speech.Client

	Language string
}

// language example: "en-US", "id-ID"
func NewGoogleSpeech(ctx context.Context, language string) (*GoogleSpeech, error) {
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	if language == "" {
		language = "en-US"
	}
	return &GoogleSpeech{c: c, Language: language}, nil
}

func (g *GoogleSpeech) Close() error { return g.c.Close() }

func (g *GoogleSpeech) Transcribe(ctx context.Context, audio Audio) (string, error) {
	cfg := &speechpb.RecognitionConfig{
		LanguageCode:               g.Language,
		EnableAutomaticPunctuation: true,
	}
	cfg.Encoding, cfg.SampleRateHertz = encodingFor(audio.ContentType)

	resp, err := g.c.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: cfg,
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio.Data},
		},
	})
	if err != nil {
		return "", err
	}
	return joinResults(resp.Results), nil
}

// encodingFor maps an upload content type to a recognition encoding. WAV and
// FLAC carry their own header so the service detects the rest.
func encodingFor(contentType string) (speechpb.RecognitionConfig_AudioEncoding, int32) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	switch ct {
	case "audio/flac", "audio/x-flac":
		return speechpb.RecognitionConfig_FLAC, 0
	case "audio/ogg", "audio/opus":
		return speechpb.RecognitionConfig_OGG_OPUS, 48000
	case "audio/webm":
		return speechpb.RecognitionConfig_WEBM_OPUS, 48000
	case "audio/l16", "audio/pcm":
		return speechpb.RecognitionConfig_LINEAR16, 16000
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0
	}
}

// joinResults keeps the most confident alternative of every result, in order.
func joinResults(results []*speechpb.SpeechRecognitionResult) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		var best *speechpb.SpeechRecognitionAlternative
		for _, alt := range r.GetAlternatives() {
			if alt.GetTranscript() == "" {
				continue
			}
			if best == nil || alt.GetConfidence() > best.GetConfidence() {
				best = alt
			}
		}
		if best != nil {
			parts = append(parts, strings.TrimSpace(best.GetTranscript()))
		}
	}
	return strings.Join(parts, " ")
}
