// Package pipeline holds the building blocks of session ingestion: stages that
// declare whether their failure is fatal, and the pure parsing of structuring
// output.
package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type Policy int

const (
	// Fatal stages abort ingestion on error.
	Fatal Policy = iota
	// BestEffort stages substitute a fallback value on error.
	BestEffort
)

func (p Policy) String() string {
	if p == BestEffort {
		return "best_effort"
	}
	return "fatal"
}

// Stage is one fallible step from In to Out.
type Stage[In, Out any] struct {
	Name    string
	Policy  Policy
	Timeout time.Duration // zero means no deadline
	Run     func(ctx context.Context, in In) (Out, error)
	// Fallback is consulted by BestEffort stages. err is the failure that
	// triggered it.
	Fallback func(in In, err error) Out
}

// Do runs the stage. A BestEffort stage never returns an error.
func (s Stage[In, Out]) Do(ctx context.Context, log logrus.FieldLogger, in In) (Out, error) {
	runCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.Run(runCtx, in)
	entry := log.WithFields(logrus.Fields{
		"stage":      s.Name,
		"policy":     s.Policy.String(),
		"latency_ms": time.Since(start).Milliseconds(),
	})
	if err == nil {
		entry.Debug("stage done")
		return out, nil
	}

	if s.Policy == Fatal {
		entry.WithError(err).Error("stage failed")
		var zero Out
		return zero, err
	}

	entry.WithError(err).Warn("stage degraded")
	if s.Fallback != nil {
		return s.Fallback(in, err), nil
	}
	var zero Out
	return zero, nil
}
