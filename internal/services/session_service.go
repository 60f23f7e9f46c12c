package services

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/sessionnotes/internal/models"
	"github.com/yoockh/sessionnotes/internal/pipeline"
	"github.com/yoockh/sessionnotes/internal/providers/embedding"
	"github.com/yoockh/sessionnotes/internal/providers/llm"
	"github.com/yoockh/sessionnotes/internal/providers/stt"
	"github.com/yoockh/sessionnotes/internal/repositories/memory"
	"github.com/yoockh/sessionnotes/internal/storage"
	"github.com/yoockh/sessionnotes/internal/utils"
)

const (
	DefaultFilename    = "session.wav"
	DefaultContentType = "audio/wav"

	msgProcessFailed = "Failed to process session"
	msgNoFile        = "No audio file received"
)

var errNotConfigured = errors.New("provider not configured")

// Upload is one submitted audio file. A nil *Upload means the request carried
// no file at all.
type Upload struct {
	Data        []byte
	ContentType string
	Filename    string
}

type SessionService interface {
	// Ready reports the configuration error Ingest would return, if any.
	Ready() error
	Ingest(ctx context.Context, up *Upload) (*models.PublicSession, error)
	List(ctx context.Context) ([]models.PublicSession, error)
	Get(ctx context.Context, id string) (*models.PublicSession, error)
}

// Providers are the external collaborators of ingestion. Only Transcriber is
// mandatory; the others degrade the record when nil.
type Providers struct {
	Transcriber stt.Provider
	Structurer  llm.Provider
	Embedder    embedding.Provider
	Archiver    storage.Uploader
}

type SessionOptions struct {
	// StageTimeout bounds every outbound call. Zero waits indefinitely.
	StageTimeout time.Duration
	// MissingCredential names the unset env var reported when Transcriber
	// is nil.
	MissingCredential string
}

type archiveInput struct {
	sessionID string
	upload    *Upload
}

type sessionService struct {
	sessions memory.SessionRepository
	p        Providers
	opts     SessionOptions
	log      *logrus.Logger
	now      func() time.Time

	transcribe pipeline.Stage[stt.Audio, string]
	structure  pipeline.Stage[string, pipeline.Structuring]
	embed      pipeline.Stage[string, []float32]
	archive    pipeline.Stage[archiveInput, string]
}

func NewSessionService(sessions memory.SessionRepository, p Providers, opts SessionOptions, log *logrus.Logger) SessionService {
	if log == nil {
		log = logrus.New()
	}
	s := &sessionService{sessions: sessions, p: p, opts: opts, log: log, now: time.Now}

	s.transcribe = pipeline.Stage[stt.Audio, string]{
		Name:    "transcribe",
		Policy:  pipeline.Fatal,
		Timeout: opts.StageTimeout,
		Run: func(ctx context.Context, a stt.Audio) (string, error) {
			return s.p.Transcriber.Transcribe(ctx, a)
		},
	}

	s.structure = pipeline.Stage[string, pipeline.Structuring]{
		Name:    "structure",
		Policy:  pipeline.BestEffort,
		Timeout: opts.StageTimeout,
		Run: func(ctx context.Context, transcript string) (pipeline.Structuring, error) {
			if s.p.Structurer == nil {
				return pipeline.Structuring{}, errNotConfigured
			}
			raw, err := s.p.Structurer.CompleteJSON(ctx, pipeline.SystemPrompt, pipeline.UserPrompt(transcript))
			if err != nil {
				return pipeline.Structuring{}, err
			}
			return pipeline.ParseStructuring(raw, transcript), nil
		},
		Fallback: func(transcript string, _ error) pipeline.Structuring {
			return pipeline.FallbackStructuring(transcript)
		},
	}

	s.embed = pipeline.Stage[string, []float32]{
		Name:    "embed",
		Policy:  pipeline.BestEffort,
		Timeout: opts.StageTimeout,
		Run: func(ctx context.Context, text string) ([]float32, error) {
			if s.p.Embedder == nil {
				return nil, errNotConfigured
			}
			vec, err := s.p.Embedder.Embed(ctx, text)
			if err != nil {
				return nil, err
			}
			if len(vec) == 0 {
				return nil, errors.New("empty embedding")
			}
			return vec, nil
		},
		Fallback: func(string, error) []float32 { return nil },
	}

	s.archive = pipeline.Stage[archiveInput, string]{
		Name:    "archive",
		Policy:  pipeline.BestEffort,
		Timeout: opts.StageTimeout,
		Run: func(ctx context.Context, in archiveInput) (string, error) {
			object := "sessions/" + in.sessionID + "/" + in.upload.Filename
			return s.p.Archiver.Upload(ctx, object, in.upload.ContentType, bytes.NewReader(in.upload.Data))
		},
	}

	return s
}

func (s *sessionService) Ready() error {
	if s.p.Transcriber != nil {
		return nil
	}
	msg := "transcription service is not configured"
	if s.opts.MissingCredential != "" {
		msg = s.opts.MissingCredential + " is not set"
	}
	return utils.E(utils.CodeNotConfigured, "SessionService.Ingest", msg, nil)
}

func (s *sessionService) Ingest(ctx context.Context, up *Upload) (*models.PublicSession, error) {
	const op = "SessionService.Ingest"

	if err := s.Ready(); err != nil {
		return nil, err
	}
	if up == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, msgNoFile, nil)
	}
	up = &Upload{Data: up.Data, ContentType: up.ContentType, Filename: up.Filename}
	if up.Filename == "" {
		up.Filename = DefaultFilename
	}
	if up.ContentType == "" {
		up.ContentType = DefaultContentType
	}

	id := uuid.NewString()
	log := s.log.WithFields(logrus.Fields{
		"session_id": id,
		"filename":   up.Filename,
		"bytes":      len(up.Data),
	})

	transcript, err := s.transcribe.Do(ctx, log, stt.Audio{
		Data:        up.Data,
		ContentType: up.ContentType,
		Filename:    up.Filename,
	})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, msgProcessFailed, err)
	}

	st, _ := s.structure.Do(ctx, log, transcript)
	vec, _ := s.embed.Do(ctx, log, pipeline.EmbeddingInput(st.Summary, transcript))

	var audioPath string
	if s.p.Archiver != nil {
		audioPath, _ = s.archive.Do(ctx, log, archiveInput{sessionID: id, upload: up})
	}

	// Enrichment that failed because the caller went away is not a degraded
	// result; store nothing.
	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("session abandoned")
		return nil, utils.E(utils.CodeInternal, op, msgProcessFailed, err)
	}

	session := &models.Session{
		ID:         id,
		Filename:   up.Filename,
		Transcript: transcript,
		Summary:    st.Summary,
		Speakers:   st.Speakers,
		Turns:      st.Turns,
		Embedding:  vec,
		AudioPath:  audioPath,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.sessions.Prepend(ctx, session); err != nil {
		return nil, utils.E(utils.CodeInternal, op, msgProcessFailed, err)
	}

	log.WithFields(logrus.Fields{
		"structuring": st.Source,
		"vectorized":  session.Vectorized(),
	}).Info("session ingested")

	out := session.Public()
	return &out, nil
}

func (s *sessionService) List(ctx context.Context) ([]models.PublicSession, error) {
	const op = "SessionService.List"

	rows, err := s.sessions.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list sessions", err)
	}
	out := make([]models.PublicSession, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Public())
	}
	return out, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*models.PublicSession, error) {
	const op = "SessionService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session id is required", nil)
	}
	row, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "session not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get session", err)
	}
	out := row.Public()
	return &out, nil
}
