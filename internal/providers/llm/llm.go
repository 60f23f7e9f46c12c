package llm

import "context"

type Provider interface {
	// CompleteJSON asks the model for a JSON object answering user under the
	// system instruction and returns the raw text. Callers must not assume
	// the text parses.
	CompleteJSON(ctx context.Context, system, user string) (string, error)
	Close() error
}
