package services

import (
	"context"
	"io"
	"sync"

	"github.com/yoockh/sessionnotes/internal/providers/stt"
)

type fakeTranscriber struct {
	text  string
	err   error
	calls []stt.Audio
}

func (f *fakeTranscriber) Transcribe(_ context.Context, a stt.Audio) (string, error) {
	f.calls = append(f.calls, a)
	return f.text, f.err
}

func (f *fakeTranscriber) Close() error { return nil }

type fakeStructurer struct {
	raw    string
	err    error
	system string
	user   string
}

func (f *fakeStructurer) CompleteJSON(_ context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	return f.raw, f.err
}

func (f *fakeStructurer) Close() error { return nil }

type fakeEmbedder struct {
	vec   []float32
	err   error
	input string
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.input = text
	return f.vec, f.err
}

type fakeArchiver struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (f *fakeArchiver) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(r)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[objectName] = b
	return "gs://audio/" + objectName, nil
}
