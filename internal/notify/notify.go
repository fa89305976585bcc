// Package notify tells the user that a focus or break interval has ended
package notify

import (
	"sync"

	"github.com/ayoisaiah/hardmode/internal/session"
)

// Notifier reacts to the end of an interval. Failures are the notifier's own
// business: they are logged, never returned.
type Notifier interface {
	Notify(ended session.Mode)
}

// DefaultMessages is the notification text shown when each mode ends.
var DefaultMessages = map[session.Mode]string{
	session.Focus: "Time for a break.",
	session.Break: "Ready to focus?",
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(session.Mode) {}

// Multi notifies each notifier in turn.
type Multi []Notifier

func (m Multi) Notify(ended session.Mode) {
	for _, n := range m {
		n.Notify(ended)
	}
}

// Async runs the wrapped notifier in its own goroutine so that the caller
// never waits on a slow notification channel.
type Async struct {
	n  Notifier
	wg sync.WaitGroup
}

// NewAsync wraps n.
func NewAsync(n Notifier) *Async {
	return &Async{n: n}
}

func (a *Async) Notify(ended session.Mode) {
	a.wg.Add(1)

	go func() {
		defer a.wg.Done()

		a.n.Notify(ended)
	}()
}

// Wait blocks until all notifications have been delivered.
func (a *Async) Wait() {
	a.wg.Wait()
}
