package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/yoockh/sessionnotes/internal/models"
)

const (
	SystemPrompt = "You are a therapist assistant. Given a transcript, respond as JSON with keys: " +
		"summary (<=120 words), speakers (array of at least two items, each with name and role, optional note), " +
		"and turns (array of dialogue turns with speaker and text, at least 4 turns if possible). " +
		"Avoid PHI and keep speaker names generic like Therapist, Client, Partner."

	EmptyTranscript  = "No transcript content available."
	FallbackSummary  = "No summary available."
	EmptyEmbedding   = "No content available"
	fallbackTurnRune = 220
)

// DefaultSpeakers is used whenever structuring yields fewer than two speakers.
func DefaultSpeakers() []models.Speaker {
	return []models.Speaker{
		{Name: "Speaker 1", Role: "Therapist"},
		{Name: "Speaker 2", Role: "Client"},
	}
}

// FallbackTurns synthesizes a two-line dialogue when structuring yields none.
func FallbackTurns(summary, transcript string) []models.Turn {
	first := summary
	if first == "" {
		first = EmptyTranscript
	}
	second := truncateRunes(transcript, fallbackTurnRune)
	if second == "" {
		second = EmptyTranscript
	}
	return []models.Turn{
		{Speaker: "Therapist", Text: first},
		{Speaker: "Client", Text: second},
	}
}

// UserPrompt is the message sent alongside SystemPrompt.
func UserPrompt(transcript string) string {
	if transcript == "" {
		return EmptyTranscript
	}
	return transcript
}

type Source string

const (
	SourceParsed   Source = "parsed"   // every field came from the model
	SourcePartial  Source = "partial"  // valid JSON, some fields defaulted
	SourceFallback Source = "fallback" // unusable output, all fields defaulted
)

// Structuring is the summary, speakers and turns for one transcript, tagged
// with where they came from.
type Structuring struct {
	Source   Source
	Summary  string
	Speakers []models.Speaker
	Turns    []models.Turn
}

type rawStructuring struct {
	Summary  string           `json:"summary"`
	Speakers []models.Speaker `json:"speakers"`
	Turns    []models.Turn    `json:"turns"`
}

// ParseStructuring turns raw model output into a Structuring. It never fails;
// missing or malformed parts are replaced by the fixed defaults.
func ParseStructuring(raw, transcript string) Structuring {
	var r rawStructuring
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = "{}"
	}
	if err := json.Unmarshal([]byte(trimmed), &r); err != nil {
		return FallbackStructuring(transcript)
	}

	out := Structuring{Source: SourceParsed}
	defaulted := false

	out.Summary = strings.TrimSpace(r.Summary)
	if out.Summary == "" {
		out.Summary = FallbackSummary
		defaulted = true
	}

	out.Speakers = cleanSpeakers(r.Speakers)
	if len(out.Speakers) < 2 {
		out.Speakers = DefaultSpeakers()
		defaulted = true
	}

	out.Turns = cleanTurns(r.Turns)
	if len(out.Turns) == 0 {
		out.Turns = FallbackTurns(out.Summary, transcript)
		defaulted = true
	}

	if defaulted {
		out.Source = SourcePartial
	}
	return out
}

// FallbackStructuring is the result used when the model output is unusable or
// the structuring call itself failed.
func FallbackStructuring(transcript string) Structuring {
	return Structuring{
		Source:   SourceFallback,
		Summary:  FallbackSummary,
		Speakers: DefaultSpeakers(),
		Turns:    FallbackTurns(FallbackSummary, transcript),
	}
}

// EmbeddingInput picks the text to embed: summary, then transcript, then a
// fixed placeholder.
func EmbeddingInput(summary, transcript string) string {
	switch {
	case summary != "":
		return summary
	case transcript != "":
		return transcript
	default:
		return EmptyEmbedding
	}
}

func cleanSpeakers(in []models.Speaker) []models.Speaker {
	out := make([]models.Speaker, 0, len(in))
	for _, sp := range in {
		sp.Name = strings.TrimSpace(sp.Name)
		sp.Role = strings.TrimSpace(sp.Role)
		sp.Note = strings.TrimSpace(sp.Note)
		if sp.Name == "" && sp.Role == "" {
			continue
		}
		out = append(out, sp)
	}
	return out
}

func cleanTurns(in []models.Turn) []models.Turn {
	out := make([]models.Turn, 0, len(in))
	for _, t := range in {
		t.Text = strings.TrimSpace(t.Text)
		if t.Text == "" {
			continue
		}
		t.Speaker = strings.TrimSpace(t.Speaker)
		out = append(out, t)
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
