package engine

import "time"

// Clock converts variable frame deltas into a whole number of fixed ticks.
// Leftover time carries into the next frame; backlog beyond maxSteps is dropped
// so a stalled frame cannot trigger a burst of catch-up physics.
type Clock struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	dropped  time.Duration
	ticks    uint64
}

func NewClock(step time.Duration, maxSteps int) *Clock {
	if step <= 0 {
		step = time.Millisecond
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Clock{step: step, maxSteps: maxSteps}
}

// Advance adds a frame delta and returns the ticks to run now
func (c *Clock) Advance(delta time.Duration) int {
	if delta > 0 {
		c.acc += delta
	}
	n := int(c.acc / c.step)
	if n > c.maxSteps {
		c.dropped += c.acc - time.Duration(c.maxSteps)*c.step
		n = c.maxSteps
		c.acc = 0
	} else {
		c.acc -= time.Duration(n) * c.step
	}
	c.ticks += uint64(n)
	return n
}

// Reset clears carried time, e.g. after a pause
func (c *Clock) Reset() {
	c.acc = 0
}

func (c *Clock) Step() time.Duration { return c.step }

// Pending is the carried fraction of a tick
func (c *Clock) Pending() time.Duration { return c.acc }

// Dropped is the total backlog discarded by the cap
func (c *Clock) Dropped() time.Duration { return c.dropped }

// Ticks is the total ticks handed out
func (c *Clock) Ticks() uint64 { return c.ticks }
