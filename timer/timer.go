// Package timer operates the focus/break state machine and handles the
// recovery of interrupted timers
package timer

import (
	"io"
	"log/slog"
	"time"

	"github.com/ayoisaiah/hardmode/internal/session"
)

// Persister stores snapshots of the timer.
type Persister interface {
	Persist(st session.State) (time.Time, error)
	Clear() error
}

// Notifier is told whenever an interval runs out. It must not block.
type Notifier interface {
	Notify(ended session.Mode)
}

// Sink receives finalized completion records.
type Sink interface {
	Emit(rec session.CompletionRecord)
}

// Timer is the focus/break state machine. It is not safe for concurrent use:
// ticks, user actions, task changes and review resolutions must all be
// delivered from one goroutine.
type Timer struct {
	store     Persister
	notifier  Notifier
	sink      Sink
	now       func() time.Time
	clock     *Clock
	gate      *ReviewGate
	logger    *slog.Logger
	persisted time.Time
	mode      session.Mode
	task      string
	durations session.Durations
	pauses    int
	degraded  bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithStore sets where snapshots are persisted.
func WithStore(p Persister) Option {
	return func(t *Timer) {
		t.store = p
	}
}

// WithNotifier sets the expiry notification channel.
func WithNotifier(n Notifier) Option {
	return func(t *Timer) {
		t.notifier = n
	}
}

// WithSink sets the destination of completion records.
func WithSink(s Sink) Option {
	return func(t *Timer) {
		t.sink = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

// WithWallClock overrides time.Now.
func WithWallClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithUnit sets the tick interval of the clock.
func WithUnit(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.clock.Unit = d
		}
	}
}

// New creates a stopped timer at the start of a focus interval.
func New(d session.Durations, opts ...Option) *Timer {
	t := &Timer{
		durations: d,
		mode:      session.Focus,
		clock:     NewClock(d.Seconds(session.Focus)),
		store:     nopStore{},
		notifier:  nopNotifier{},
		sink:      nopSink{},
		now:       time.Now,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.gate = NewReviewGate(t.now)

	return t
}

// Resume loads a restored state into the timer. When expired is set, the
// interval in st ran out while the process was not active and is completed
// here, once.
func (t *Timer) Resume(st session.State, expired bool) {
	t.mode = st.Mode
	t.task = st.TaskID
	t.pauses = st.PauseCount
	t.persisted = st.LastPersistedAt

	t.clock.Set(st.TimeLeft)

	if st.AwaitingReview {
		t.gate.Open(
			st.TaskID,
			st.PauseCount,
			t.durations.Seconds(session.Focus),
		)
	}

	if expired {
		t.logger.Info(
			"interval ended while hardmode was not running",
			slog.String("mode", st.Mode.String()),
		)

		t.expire()

		return
	}

	if st.Running && st.TimeLeft > 0 {
		t.clock.Start()
	}

	t.persist()
}

// Start runs the clock. A focus interval needs a bound task.
func (t *Timer) Start() error {
	if t.gate.Pending() {
		return ErrAwaitingReview
	}

	if t.clock.Running() {
		return nil
	}

	if t.mode == session.Focus && t.task == "" {
		return ErrNoTaskBound
	}

	if t.clock.Remaining() == 0 {
		t.clock.Set(t.durations.Seconds(t.mode))
	}

	t.clock.Start()

	t.logger.Debug(
		"timer started",
		slog.String("mode", t.mode.String()),
		slog.Int("time_left", t.clock.Remaining()),
	)

	t.persist()

	return nil
}

// Pause stops the clock. Pausing a focus interval counts against it; pausing
// a stopped clock does nothing.
func (t *Timer) Pause() {
	if !t.clock.Stop() {
		return
	}

	if t.mode == session.Focus {
		t.pauses++
	}

	t.logger.Debug(
		"timer paused",
		slog.String("mode", t.mode.String()),
		slog.Int("pause_count", t.pauses),
	)

	t.persist()
}

// Toggle starts a stopped clock or pauses a running one.
func (t *Timer) Toggle() error {
	if t.clock.Running() {
		t.Pause()
		return nil
	}

	return t.Start()
}

// Tick advances the running clock by one unit.
func (t *Timer) Tick() {
	if !t.clock.Running() {
		return
	}

	if t.clock.Tick() {
		t.expire()
		return
	}

	t.persist()
}

// TickFor advances the clock if tag identifies its current run. It reports
// whether the tick was accepted.
func (t *Timer) TickFor(tag int) bool {
	if !t.clock.Current(tag) {
		return false
	}

	t.Tick()

	return true
}

// Reset stops the clock and restarts the current interval from its full
// duration.
func (t *Timer) Reset() error {
	if t.gate.Pending() {
		return ErrAwaitingReview
	}

	t.clock.Set(t.durations.Seconds(t.mode))
	t.pauses = 0

	t.logger.Debug("timer reset", slog.String("mode", t.mode.String()))

	t.clear()

	return nil
}

// Switch moves to the other mode and starts it fresh.
func (t *Timer) Switch() error {
	if t.gate.Pending() {
		return ErrAwaitingReview
	}

	t.mode = t.mode.Other()
	t.clock.Set(t.durations.Seconds(t.mode))
	t.pauses = 0

	t.logger.Debug("mode switched", slog.String("mode", t.mode.String()))

	t.clear()

	return nil
}

// Save resolves the pending review with r.
func (t *Timer) Save(r session.Review) (session.CompletionRecord, error) {
	rec, err := t.gate.Save(r)
	if err != nil {
		return rec, err
	}

	t.complete(rec)

	return rec, nil
}

// Skip resolves the pending review without review fields.
func (t *Timer) Skip() (session.CompletionRecord, error) {
	rec, err := t.gate.Skip()
	if err != nil {
		return rec, err
	}

	t.complete(rec)

	return rec, nil
}

// expire performs the transition at the end of the current interval.
func (t *Timer) expire() {
	ended := t.mode

	switch ended {
	case session.Focus:
		t.gate.Open(t.task, t.pauses, t.durations.Seconds(session.Focus))

		t.mode = session.Break
		t.clock.Set(t.durations.Seconds(session.Break))
	case session.Break:
		t.mode = session.Focus
		t.clock.Set(t.durations.Seconds(session.Focus))
		t.pauses = 0
	}

	t.logger.Info(
		"interval expired",
		slog.String("mode", ended.String()),
		slog.Bool("awaiting_review", t.gate.Pending()),
	)

	t.persist()

	t.notifier.Notify(ended)
}

// complete closes a focus interval whose review was resolved.
func (t *Timer) complete(rec session.CompletionRecord) {
	t.pauses = 0

	t.clear()

	t.logger.Info(
		"focus session completed",
		slog.String("record_id", rec.ID),
		slog.String("task_id", rec.TaskID),
		slog.Int("pause_count", rec.PauseCount),
		slog.Bool("reviewed", rec.Reviewed()),
	)

	t.sink.Emit(rec)
}

func (t *Timer) persist() {
	ts, err := t.store.Persist(t.State())
	if err != nil {
		if !t.degraded {
			t.logger.Error("session state not persisted", slog.Any("error", err))
		}

		t.degraded = true

		return
	}

	if t.degraded {
		t.logger.Info("session state persisted again")
	}

	t.degraded = false
	t.persisted = ts
}

func (t *Timer) clear() {
	if err := t.store.Clear(); err != nil {
		t.logger.Error("session state not cleared", slog.Any("error", err))
	}
}

// State returns a snapshot of the timer.
func (t *Timer) State() session.State {
	task := t.task
	if t.gate.Pending() {
		task = t.gate.TaskID()
	}

	return session.State{
		Mode:            t.mode,
		TimeLeft:        t.clock.Remaining(),
		Running:         t.clock.Running(),
		PauseCount:      t.pauses,
		LastPersistedAt: t.persisted,
		AwaitingReview:  t.gate.Pending(),
		TaskID:          task,
	}
}

// Mode returns the current mode.
func (t *Timer) Mode() session.Mode {
	return t.mode
}

// Task returns the bound task.
func (t *Timer) Task() string {
	return t.task
}

// PauseCount returns the pauses and aborts counted against the current focus
// interval.
func (t *Timer) PauseCount() int {
	return t.pauses
}

// Running reports whether the clock is counting down.
func (t *Timer) Running() bool {
	return t.clock.Running()
}

// Remaining returns the seconds left in the current interval.
func (t *Timer) Remaining() int {
	return t.clock.Remaining()
}

// AwaitingReview reports whether a completed focus interval needs a review.
func (t *Timer) AwaitingReview() bool {
	return t.gate.Pending()
}

// Durations returns the configured interval lengths.
func (t *Timer) Durations() session.Durations {
	return t.durations
}

// Clock exposes the countdown so tick sources can read its tag and unit.
func (t *Timer) Clock() *Clock {
	return t.clock
}

type nopStore struct{}

func (nopStore) Persist(session.State) (time.Time, error) { return time.Now(), nil }

func (nopStore) Clear() error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(session.Mode) {}

type nopSink struct{}

func (nopSink) Emit(session.CompletionRecord) {}
