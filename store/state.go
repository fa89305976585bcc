package store

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/hardmode/internal/apperr"
	"github.com/ayoisaiah/hardmode/internal/session"
)

// StalenessWindow is the maximum age of a snapshot that is still restored.
const StalenessWindow = 2 * time.Hour

var (
	errPersist = &apperr.Error{
		Kind:    apperr.KindPersistence,
		Message: "unable to persist session state",
	}

	errRestore = &apperr.Error{
		Kind:    apperr.KindPersistence,
		Message: "unable to restore session state",
	}

	errClear = &apperr.Error{
		Kind:    apperr.KindPersistence,
		Message: "unable to clear session state",
	}

	errInvalidSnapshot = &apperr.Error{
		Kind:    apperr.KindPersistence,
		Message: "stored session has unknown mode %q",
	}
)

// Snapshot is the serialised form of the session state.
type Snapshot struct {
	Mode           session.Mode `json:"mode"`
	TaskID         string       `json:"taskId,omitempty"`
	TimeLeft       int          `json:"timeLeft"`
	PauseCount     int          `json:"pauseCount"`
	Timestamp      int64        `json:"timestamp"`
	IsRunning      bool         `json:"isRunning"`
	AwaitingReview bool         `json:"awaitingReview,omitempty"`
}

// Restored is the outcome of StateStore.Restore.
type Restored struct {
	State session.State
	// Found is set when a snapshot was present and used
	Found bool
	// Stale is set when a snapshot was discarded for being too old
	Stale bool
	// Expired is set when a running interval ran out while the process was
	// not active. The caller must complete the interval exactly once.
	Expired bool
}

// StateStore writes and reconstructs session snapshots.
type StateStore struct {
	repo      Repository
	now       func() time.Time
	logger    *slog.Logger
	durations session.Durations
}

// Option configures a StateStore.
type Option func(*StateStore)

// WithClock overrides the wall clock used for timestamps and ages.
func WithClock(now func() time.Time) Option {
	return func(s *StateStore) {
		s.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *StateStore) {
		s.logger = l
	}
}

// NewStateStore returns a StateStore backed by repo.
func NewStateStore(
	repo Repository,
	d session.Durations,
	opts ...Option,
) *StateStore {
	s := &StateStore{
		repo:      repo,
		durations: d,
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Persist writes st and the current time to the slot. It returns the
// timestamp that was written.
func (s *StateStore) Persist(st session.State) (time.Time, error) {
	now := s.now()

	b, err := json.Marshal(Snapshot{
		TimeLeft:       st.TimeLeft,
		IsRunning:      st.Running,
		Mode:           st.Mode,
		PauseCount:     st.PauseCount,
		Timestamp:      now.UnixMilli(),
		AwaitingReview: st.AwaitingReview,
		TaskID:         st.TaskID,
	})
	if err != nil {
		return now, errPersist.Wrap(err)
	}

	if err := s.repo.Save(b); err != nil {
		return now, errPersist.Wrap(err)
	}

	return now, nil
}

// Clear removes the slot.
func (s *StateStore) Clear() error {
	if err := s.repo.Clear(); err != nil {
		return errClear.Wrap(err)
	}

	return nil
}

// Restore reads the slot and reconstructs the state, accounting for the
// time that passed since it was written. The returned state is always
// usable: it falls back to the defaults when the slot is empty, stale or
// unreadable.
func (s *StateStore) Restore() (Restored, error) {
	defaults := Restored{State: session.Default(s.durations)}

	b, err := s.repo.Load()
	if errors.Is(err, ErrNotFound) {
		return defaults, nil
	}

	if err != nil {
		return defaults, errRestore.Wrap(err)
	}

	var snap Snapshot

	if err := json.Unmarshal(b, &snap); err != nil {
		return defaults, errRestore.Wrap(err)
	}

	s.logger.Debug("loaded session snapshot", slog.String("snapshot", spew.Sdump(snap)))

	if !snap.Mode.Valid() {
		return defaults, errInvalidSnapshot.Fmt(snap.Mode)
	}

	persistedAt := time.UnixMilli(snap.Timestamp)

	age := s.now().Sub(persistedAt)
	if age < 0 {
		age = 0
	}

	if age >= StalenessWindow {
		s.logger.Info(
			"discarded stale session state",
			slog.Duration("age", age),
		)

		defaults.Stale = true

		return defaults, nil
	}

	st := session.State{
		Mode:            snap.Mode,
		TimeLeft:        clamp(snap.TimeLeft, 0, s.durations.Seconds(snap.Mode)),
		Running:         snap.IsRunning,
		PauseCount:      max(snap.PauseCount, 0),
		LastPersistedAt: persistedAt,
		AwaitingReview:  snap.AwaitingReview,
		TaskID:          snap.TaskID,
	}

	r := Restored{State: st, Found: true}

	if !st.Running {
		return r, nil
	}

	elapsed := int(age / time.Second)

	r.State.TimeLeft = max(0, st.TimeLeft-elapsed)
	if r.State.TimeLeft == 0 {
		r.State.Running = false
		r.Expired = true
	}

	return r, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
