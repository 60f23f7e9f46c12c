package models

import "time"

type Speaker struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Note string `json:"note,omitempty"`
}

type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Session is one transcribed and enriched upload. It is never mutated after
// it has been stored.
type Session struct {
	ID         string
	Filename   string
	Transcript string
	Summary    string
	Speakers   []Speaker
	Turns      []Turn
	Embedding  []float32
	AudioPath  string // gs:// object when the upload was archived
	CreatedAt  time.Time
}

// Vectorized reports whether an embedding was computed for the session.
func (s *Session) Vectorized() bool { return len(s.Embedding) > 0 }

// PublicSession is the shape returned over HTTP. The embedding vector never
// leaves the process.
type PublicSession struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Summary    string    `json:"summary"`
	Transcript string    `json:"transcript"`
	Speakers   []Speaker `json:"speakers"`
	Turns      []Turn    `json:"turns"`
	Vectorized bool      `json:"vectorized"`
	AudioPath  string    `json:"audioPath,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Session) Public() PublicSession {
	return PublicSession{
		ID:         s.ID,
		Filename:   s.Filename,
		Summary:    s.Summary,
		Transcript: s.Transcript,
		Speakers:   append([]Speaker(nil), s.Speakers...),
		Turns:      append([]Turn(nil), s.Turns...),
		Vectorized: s.Vectorized(),
		AudioPath:  s.AudioPath,
		CreatedAt:  s.CreatedAt,
	}
}

// Clone returns a deep copy so callers cannot reach the stored slices.
func (s *Session) Clone() *Session {
	out := *s
	out.Speakers = append([]Speaker(nil), s.Speakers...)
	out.Turns = append([]Turn(nil), s.Turns...)
	out.Embedding = append([]float32(nil), s.Embedding...)
	return &out
}
