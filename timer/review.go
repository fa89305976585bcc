package timer

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ayoisaiah/hardmode/internal/session"
)

// ReviewGate holds a completed focus interval until its review is saved or
// skipped. Each opening resolves at most once.
type ReviewGate struct {
	now     func() time.Time
	pending *session.CompletionRecord
}

// NewReviewGate returns a closed gate.
func NewReviewGate(now func() time.Time) *ReviewGate {
	return &ReviewGate{now: now}
}

// Open captures the interval that just expired. Opening an already open gate
// keeps the first interval.
func (g *ReviewGate) Open(taskID string, pauseCount, durationSec int) {
	if g.pending != nil {
		return
	}

	g.pending = &session.CompletionRecord{
		TaskID:      taskID,
		DurationSec: durationSec,
		PauseCount:  pauseCount,
	}
}

// Pending reports whether the gate is open.
func (g *ReviewGate) Pending() bool {
	return g.pending != nil
}

// TaskID returns the task of the pending interval.
func (g *ReviewGate) TaskID() string {
	if g.pending == nil {
		return ""
	}

	return g.pending.TaskID
}

// Save resolves the gate with a review. An invalid review leaves the gate
// open.
func (g *ReviewGate) Save(r session.Review) (session.CompletionRecord, error) {
	if g.pending == nil {
		return session.CompletionRecord{}, ErrNoReviewPending
	}

	if r.FocusScore < session.MinFocusScore ||
		r.FocusScore > session.MaxFocusScore {
		return session.CompletionRecord{}, ErrInvalidFocusScore.Fmt(r.FocusScore)
	}

	if r.Reason != "" && !r.Reason.Valid() {
		return session.CompletionRecord{}, ErrUnknownReason.Fmt(r.Reason)
	}

	rec := g.resolve()
	rec.Apply(r)

	return rec, nil
}

// Skip resolves the gate without review fields.
func (g *ReviewGate) Skip() (session.CompletionRecord, error) {
	if g.pending == nil {
		return session.CompletionRecord{}, ErrNoReviewPending
	}

	return g.resolve(), nil
}

func (g *ReviewGate) resolve() session.CompletionRecord {
	rec := *g.pending
	g.pending = nil

	rec.ID = ulid.Make().String()
	rec.CompletedAt = g.now()
	rec.Aborted = false

	return rec
}
