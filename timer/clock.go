package timer

import "time"

// DefaultUnit is the interval between two ticks of the clock.
const DefaultUnit = time.Second

// Clock is the countdown for the current interval. It only changes when told
// to: something outside calls Tick once per Unit while the clock is running.
//
// Every Start and Stop begins a new run identified by a tag. Tick sources
// carry the tag they were scheduled with so that ticks from a previous run
// can be dropped.
type Clock struct {
	Unit      time.Duration
	remaining int
	tag       int
	running   bool
}

// NewClock returns a stopped clock set to seconds.
func NewClock(seconds int) *Clock {
	return &Clock{
		Unit:      DefaultUnit,
		remaining: seconds,
	}
}

// Start sets the clock running and returns the tag for the new run. Starting
// a running clock keeps the current run.
func (c *Clock) Start() int {
	if c.running {
		return c.tag
	}

	c.running = true
	c.tag++

	return c.tag
}

// Stop halts the clock. It reports whether the clock was running.
func (c *Clock) Stop() bool {
	if !c.running {
		return false
	}

	c.running = false
	c.tag++

	return true
}

// Set stops the clock and loads a new countdown.
func (c *Clock) Set(seconds int) {
	c.Stop()
	c.remaining = max(seconds, 0)
}

// Tick decrements the countdown by one. It reports true exactly once per
// exhaustion: on the tick that reaches zero, after which the clock is
// stopped.
func (c *Clock) Tick() (expired bool) {
	if !c.running || c.remaining == 0 {
		return false
	}

	c.remaining--

	if c.remaining == 0 {
		c.Stop()
		return true
	}

	return false
}

// Current reports whether tag identifies the active run.
func (c *Clock) Current(tag int) bool {
	return c.running && c.tag == tag
}

// Running reports whether the clock is counting down.
func (c *Clock) Running() bool {
	return c.running
}

// Remaining returns the seconds left in the countdown.
func (c *Clock) Remaining() int {
	return c.remaining
}

// Tag returns the identifier of the current run.
func (c *Clock) Tag() int {
	return c.tag
}
