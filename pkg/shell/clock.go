package shell

import "time"

const (
	// deltaEpsilon replaces anomalous frame deltas: negative ones and
	// implausibly large ones (a debugger pause, a suspended laptop).
	deltaEpsilon = 1e-3
	maxDelta     = 1.0
)

// frameClock produces the (delta, total) pair handed to Update. It starts
// when the loop starts; both values are non-negative and total never
// decreases within one run.
type frameClock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	total float64
}

func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &frameClock{now: now, start: t, last: t}
}

func (c *frameClock) tick() (delta, total float64) {
	t := c.now()
	delta = t.Sub(c.last).Seconds()
	c.last = t
	if delta < 0 || delta > maxDelta {
		delta = deltaEpsilon
	}
	total = t.Sub(c.start).Seconds()
	if total < c.total {
		total = c.total
	}
	c.total = total
	return delta, total
}
