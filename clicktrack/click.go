// Package clicktrack builds metronome click tracks out of the musical time
// conversions: the click positions, a rendered audio buffer, .wav/.raw files
// and Standard MIDI Files.
package clicktrack

import (
	"errors"
	"fmt"

	"github.com/vsariola/timecalc"
)

// Click is a single metronome click. The clicks follow the pulse of the time
// signature: there are TimeSig.Top clicks of the note value 1/TimeSig.Bottom
// in each bar, the first one of every bar accented.
type Click struct {
	Bar    int
	Pulse  int
	Accent bool
	Tick   timecalc.Ticks
	Sample timecalc.Samples
	Ms     timecalc.Ms
}

// Clicks returns the clicks of the given number of bars, in order.
func Clicks(ctx timecalc.Context, bars int) ([]Click, error) {
	if bars < 0 {
		return nil, errors.New("number of bars should be >= 0")
	}
	if err := ctx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid context: %v", err)
	}
	pulse, ok := ctx.TimeSig.Pulse()
	if !ok {
		return nil, fmt.Errorf("time signature %v has no pulse division to click on", ctx.TimeSig)
	}
	ret := make([]Click, 0, bars*ctx.TimeSig.Top)
	for bar := 0; bar < bars; bar++ {
		barStart := timecalc.Bars(bar)
		for p := 0; p < ctx.TimeSig.Top; p++ {
			offset := timecalc.Measure{Num: timecalc.NumDiv(p), Div: pulse, DivType: timecalc.Whole}
			ms := barStart.Ms(ctx.BPM, ctx.TimeSig) + ctx.Ms(offset)
			ret = append(ret, Click{
				Bar:    bar,
				Pulse:  p,
				Accent: p == 0,
				Tick:   barStart.Ticks(ctx.TimeSig, ctx.PPQN) + ctx.Ticks(offset),
				Sample: ms.Samples(ctx.SampleHz),
				Ms:     ms,
			})
		}
	}
	return ret, nil
}

// Length returns the length of the given number of bars in samples.
func Length(ctx timecalc.Context, bars int) timecalc.Samples {
	return timecalc.Bars(bars).Samples(ctx.BPM, ctx.TimeSig, ctx.SampleHz)
}
