// Package session defines focus sessions and the records they produce
package session

import (
	"strings"
	"time"
)

// Mode represents the kind of interval being timed.
type Mode string

const (
	Focus Mode = "focus"
	Break Mode = "break"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == Focus || m == Break
}

// Other returns the mode that follows m.
func (m Mode) Other() Mode {
	if m == Focus {
		return Break
	}

	return Focus
}

func (m Mode) String() string {
	return string(m)
}

// Durations maps each mode to the length of its interval.
type Durations struct {
	Focus time.Duration
	Break time.Duration
}

// Of returns the duration of mode m.
func (d Durations) Of(m Mode) time.Duration {
	if m == Break {
		return d.Break
	}

	return d.Focus
}

// Seconds returns the length of mode m in whole seconds.
func (d Durations) Seconds(m Mode) int {
	return int(d.Of(m) / time.Second)
}

// State is a snapshot of the session state machine.
type State struct {
	LastPersistedAt time.Time
	Mode            Mode
	// TaskID is the task bound when the snapshot was taken.
	TaskID     string
	TimeLeft   int
	PauseCount int
	Running    bool
	// AwaitingReview is set between the end of a focus interval and the
	// resolution of its review.
	AwaitingReview bool
}

// Default returns the state used when nothing can be restored.
func Default(d Durations) State {
	return State{
		Mode:     Focus,
		TimeLeft: d.Seconds(Focus),
	}
}

// Reason explains how a focus interval went.
type Reason string

const (
	ReasonInterruption  Reason = "interruption"
	ReasonPhone         Reason = "phone"
	ReasonMusicHelped   Reason = "music helped"
	ReasonContextSwitch Reason = "context switch"
	ReasonLowEnergy     Reason = "low energy"
	ReasonEnvironment   Reason = "environment"
	ReasonDeepFlow      Reason = "deep flow"
	ReasonOther         Reason = "other"
)

// Reasons lists the reasons offered in a review, in display order.
var Reasons = []Reason{
	ReasonInterruption,
	ReasonPhone,
	ReasonMusicHelped,
	ReasonContextSwitch,
	ReasonLowEnergy,
	ReasonEnvironment,
	ReasonDeepFlow,
	ReasonOther,
}

// Valid reports whether r is one of the known reasons.
func (r Reason) Valid() bool {
	for _, v := range Reasons {
		if v == r {
			return true
		}
	}

	return false
}

const (
	MinFocusScore = 1
	MaxFocusScore = 5
)

// Review is the optional feedback captured after a focus interval.
type Review struct {
	Reason     Reason
	Note       string
	FocusScore int
}

// CompletionRecord is the immutable summary of one completed focus interval.
type CompletionRecord struct {
	CompletedAt time.Time `json:"completed_at"`
	FocusScore  *int      `json:"focus_score,omitempty"`
	Reason      *Reason   `json:"reason,omitempty"`
	Note        *string   `json:"note,omitempty"`
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	DurationSec int       `json:"duration_sec"`
	PauseCount  int       `json:"pause_count"`
	Aborted     bool      `json:"aborted"`
}

// Reviewed reports whether the record carries review fields.
func (r *CompletionRecord) Reviewed() bool {
	return r.FocusScore != nil
}

// StartedAt derives the start of the interval from its end and duration.
func (r *CompletionRecord) StartedAt() time.Time {
	return r.CompletedAt.Add(-time.Duration(r.DurationSec) * time.Second)
}

// Apply copies the review fields onto the record. Empty reasons and blank
// notes are left absent.
func (r *CompletionRecord) Apply(review Review) {
	score := review.FocusScore
	r.FocusScore = &score

	if review.Reason != "" {
		reason := review.Reason
		r.Reason = &reason
	}

	if note := strings.TrimSpace(review.Note); note != "" {
		r.Note = &note
	}
}
