package timer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/hardmode/internal/session"
)

const defaultEmitTimeout = 10 * time.Second

// Collaborator receives completed focus intervals.
type Collaborator interface {
	CompleteInterval(ctx context.Context, rec session.CompletionRecord) error
}

// Emitter forwards completion records to a Collaborator without blocking the
// caller. Failures are logged and published once on Notices.
type Emitter struct {
	collab  Collaborator
	logger  *slog.Logger
	notices chan error
	wg      sync.WaitGroup
	timeout time.Duration
}

// EmitterOption configures an Emitter.
type EmitterOption func(*Emitter)

// WithEmitTimeout bounds each call to the collaborator.
func WithEmitTimeout(d time.Duration) EmitterOption {
	return func(e *Emitter) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithEmitLogger sets the emitter's logger.
func WithEmitLogger(l *slog.Logger) EmitterOption {
	return func(e *Emitter) {
		e.logger = l
	}
}

// NewEmitter returns an Emitter that forwards to c.
func NewEmitter(c Collaborator, opts ...EmitterOption) *Emitter {
	e := &Emitter{
		collab:  c,
		timeout: defaultEmitTimeout,
		notices: make(chan error, 8),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Emit hands rec to the collaborator in the background.
func (e *Emitter) Emit(rec session.CompletionRecord) {
	e.wg.Add(1)

	go func() {
		defer e.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()

		err := e.collab.CompleteInterval(ctx, rec)
		if err == nil {
			e.logger.Info(
				"completed session synced",
				slog.String("record_id", rec.ID),
				slog.String("task_id", rec.TaskID),
			)

			return
		}

		err = ErrRemoteSync.Wrap(err)

		e.logger.Error(
			"completed session not synced",
			slog.String("record_id", rec.ID),
			slog.String("task_id", rec.TaskID),
			slog.Any("error", err),
		)

		select {
		case e.notices <- err:
		default:
		}
	}()
}

// Notices delivers sync failures. Each failure is delivered at most once and
// dropped if nobody is listening.
func (e *Emitter) Notices() <-chan error {
	return e.notices
}

// Wait blocks until all in-flight emissions have finished.
func (e *Emitter) Wait() {
	e.wg.Wait()
}
