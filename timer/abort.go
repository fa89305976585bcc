package timer

import (
	"log/slog"

	"github.com/ayoisaiah/hardmode/internal/session"
)

// BindTask changes the task the timer works on. Changing the task while a
// focus interval is running abandons that interval: the clock stops, the
// interval restarts from its full duration and the abandonment is counted
// as a pause. No completion record is ever produced for the abandoned
// attempt.
func (t *Timer) BindTask(taskID string) (aborted bool) {
	if taskID == t.task {
		return false
	}

	prev := t.task
	t.task = taskID

	if t.mode != session.Focus || !t.clock.Running() {
		t.persist()
		return false
	}

	t.clock.Set(t.durations.Seconds(session.Focus))
	t.pauses++

	t.logger.Warn(
		"focus session aborted by task change",
		slog.String("from_task", prev),
		slog.String("to_task", taskID),
		slog.Int("pause_count", t.pauses),
	)

	t.persist()

	return true
}
