// Package oscclock runs a musical clock that can be followed and retimed over
// OSC.
package oscclock

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/vsariola/timecalc"
)

// Clock counts ticks from an epoch under a Context. It is safe for
// concurrent use: the OSC server retimes it while others read it.
type Clock struct {
	mutex sync.Mutex
	epoch time.Time
	ctx   timecalc.Context
}

func NewClock(ctx timecalc.Context, epoch time.Time) *Clock {
	return &Clock{epoch: epoch, ctx: ctx}
}

func (c *Clock) Context() timecalc.Context {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.ctx
}

// Position returns the number of ticks elapsed between the epoch and now,
// rounded to the nearest tick. Negative before the epoch.
func (c *Clock) Position(now time.Time) timecalc.Ticks {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.ctx.TicksFromMs(sinceMs(c.epoch, now))
}

// Sync changes the tempo. The epoch is moved so that the beat closest to now
// stays where it is and falls exactly on now.
func (c *Clock) Sync(bpm timecalc.Bpm, now time.Time) error {
	if !(bpm > 0) || math.IsInf(bpm, 1) {
		return fmt.Errorf("BPM should be a positive number, got %v", bpm)
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	beat := math.Round(sinceMs(c.epoch, now).Beats(c.ctx.BPM))
	offset := timecalc.Ms(beat) * timecalc.BeatInMs(bpm)
	c.epoch = now.Add(-time.Duration(float64(offset) * float64(time.Millisecond)))
	c.ctx.BPM = bpm
	return nil
}

func sinceMs(epoch, now time.Time) timecalc.Ms {
	return timecalc.Ms(now.Sub(epoch)) / timecalc.Ms(time.Millisecond)
}
