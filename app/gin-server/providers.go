package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/sessionnotes/config"
	"github.com/yoockh/sessionnotes/internal/providers"
	"github.com/yoockh/sessionnotes/internal/providers/embedding"
	"github.com/yoockh/sessionnotes/internal/providers/llm"
	"github.com/yoockh/sessionnotes/internal/providers/stt"
	"github.com/yoockh/sessionnotes/internal/services"
	"github.com/yoockh/sessionnotes/internal/storage"
)

// buildProviders wires whatever the environment allows. Missing pieces are
// left nil; the session service reports or degrades around them.
func buildProviders(ctx context.Context, cfg config.Config, log *logrus.Logger) (services.Providers, func()) {
	var p services.Providers
	var closers []func() error

	hasOpenAI := cfg.OpenAIKey != ""
	oa := providers.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBaseURL)

	switch cfg.TranscribeProvider {
	case config.ProviderGoogle:
		g, err := stt.NewGoogleSpeech(ctx, cfg.STTLanguage)
		if err != nil {
			log.WithError(err).Warn("google speech unavailable; ingestion disabled")
		} else {
			p.Transcriber = g
			closers = append(closers, g.Close)
		}
	default:
		if hasOpenAI {
			p.Transcriber = stt.NewOpenAIWhisper(oa, cfg.OpenAITranscribeModel)
		}
	}

	switch cfg.LLMProvider {
	case config.ProviderVertex:
		if cfg.GoogleProject == "" {
			log.Warn("GOOGLE_CLOUD_PROJECT is not set; structuring will use defaults")
			break
		}
		v, err := llm.NewVertexGemini(ctx, cfg.GoogleProject, cfg.VertexLocation, cfg.VertexModel)
		if err != nil {
			log.WithError(err).Warn("vertex unavailable; structuring will use defaults")
		} else {
			p.Structurer = v
			closers = append(closers, v.Close)
		}
	default:
		if hasOpenAI {
			p.Structurer = llm.NewOpenAIChat(oa, cfg.OpenAIChatModel)
		}
	}

	if hasOpenAI {
		p.Embedder = embedding.NewOpenAI(oa, cfg.OpenAIEmbeddingModel)
	}

	if cfg.AudioBucket != "" {
		u, err := storage.NewGCSUploader(ctx, cfg.AudioBucket)
		if err != nil {
			log.WithError(err).Warn("audio archive unavailable")
		} else {
			p.Archiver = u
			closers = append(closers, u.Close)
		}
	}

	log.WithFields(logrus.Fields{
		"transcribe_provider": cfg.TranscribeProvider,
		"llm_provider":        cfg.LLMProvider,
		"transcriber":         p.Transcriber != nil,
		"structurer":          p.Structurer != nil,
		"embedder":            p.Embedder != nil,
		"archive":             p.Archiver != nil,
		"upstream_timeout":    cfg.UpstreamTimeout.String(),
	}).Info("providers configured")

	return p, func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.WithError(err).Warn("close provider")
			}
		}
	}
}
