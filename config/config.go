package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGoogle = "google"
	ProviderVertex = "vertex"
)

type Config struct {
	Port     string
	LogLevel string

	OpenAIKey             string
	OpenAIBaseURL         string
	OpenAITranscribeModel string
	OpenAIChatModel       string
	OpenAIEmbeddingModel  string

	TranscribeProvider string // openai|google
	LLMProvider        string // openai|vertex

	GoogleProject  string
	VertexLocation string
	VertexModel    string
	STTLanguage    string

	AudioBucket string

	// Zero means outbound calls are never cut short.
	UpstreamTimeout time.Duration

	FrontendURL string

	SupabaseURL        string
	SupabaseServiceKey string
}

// Load reads the process environment. defaultPort differs per binary.
func Load(defaultPort string) (Config, error) {
	c := Config{
		Port:     getenv("PORT", defaultPort),
		LogLevel: os.Getenv("LOG_LEVEL"),

		OpenAIKey:             strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:         os.Getenv("OPENAI_BASE_URL"),
		OpenAITranscribeModel: getenv("OPENAI_TRANSCRIBE_MODEL", "whisper-1"),
		OpenAIChatModel:       getenv("OPENAI_CHAT_MODEL", "gpt-4.1-mini"),
		OpenAIEmbeddingModel:  getenv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),

		TranscribeProvider: strings.ToLower(getenv("TRANSCRIBE_PROVIDER", ProviderOpenAI)),
		LLMProvider:        strings.ToLower(getenv("LLM_PROVIDER", ProviderOpenAI)),

		GoogleProject:  os.Getenv("GOOGLE_CLOUD_PROJECT"),
		VertexLocation: getenv("VERTEX_LOCATION", "us-central1"),
		VertexModel:    getenv("VERTEX_MODEL", "gemini-1.5-flash"),
		STTLanguage:    getenv("STT_LANGUAGE", "en-US"),

		AudioBucket: os.Getenv("AUDIO_BUCKET"),

		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),

		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
	}

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT must not be negative")
		}
		c.UpstreamTimeout = d
	}

	switch c.TranscribeProvider {
	case ProviderOpenAI, ProviderGoogle:
	default:
		return Config{}, fmt.Errorf("TRANSCRIBE_PROVIDER %q is not supported (openai|google)", c.TranscribeProvider)
	}
	switch c.LLMProvider {
	case ProviderOpenAI, ProviderVertex:
	default:
		return Config{}, fmt.Errorf("LLM_PROVIDER %q is not supported (openai|vertex)", c.LLMProvider)
	}

	return c, nil
}

// MissingCredential names the env var whose absence leaves transcription
// unconfigured, or "" when nothing is missing.
func (c Config) MissingCredential() string {
	if c.TranscribeProvider == ProviderOpenAI && c.OpenAIKey == "" {
		return "OPENAI_API_KEY"
	}
	return ""
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
