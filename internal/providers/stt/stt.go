package stt

import "context"

type Audio struct {
	Data        []byte
	ContentType string
	Filename    string
}

type Provider interface {
	// Transcribe returns the plain-text transcript; an empty string is a
	// valid result for silent audio.
	Transcribe(ctx context.Context, audio Audio) (string, error)
	Close() error
}
