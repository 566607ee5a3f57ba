package timecalc_test

import (
	"testing"

	"github.com/vsariola/timecalc"
)

var testContext = timecalc.Context{BPM: 120, PPQN: 960, SampleHz: 44100, TimeSig: fourFour}

func TestContextForwards(t *testing.T) {
	c := testContext
	bar := timecalc.Bars(1).Measure()
	if got, want := c.Ms(bar), bar.Ms(c.BPM, c.TimeSig); got != want {
		t.Errorf("Context.Ms = %v, expected %v", got, want)
	}
	if got := c.Samples(bar); got != 88200 {
		t.Errorf("Context.Samples(1 bar) = %v, expected 88200", got)
	}
	if got := c.Ticks(bar); got != 3840 {
		t.Errorf("Context.Ticks(1 bar) = %v, expected 3840", got)
	}
	if got := c.TicksFromSamples(c.SamplesFromTicks(960)); got != 960 {
		t.Errorf("ticks -> samples -> ticks gave %v, expected 960", got)
	}
	if got := c.TicksFromMs(c.BarInMs()); got != 3840 {
		t.Errorf("Context.TicksFromMs(bar) = %v, expected 3840", got)
	}
	if got, want := c.MsFromTicks(1), c.TickInMs(); got != want {
		t.Errorf("Context.MsFromTicks(1) = %v, expected %v", got, want)
	}
	if got := c.BeatInMs(); got != 500 {
		t.Errorf("Context.BeatInMs() = %v, expected 500", got)
	}
}

func TestContextValidate(t *testing.T) {
	if err := testContext.Validate(); err != nil {
		t.Fatalf("valid context failed to validate: %v", err)
	}
	broken := []func(c *timecalc.Context){
		func(c *timecalc.Context) { c.BPM = 0 },
		func(c *timecalc.Context) { c.BPM = -120 },
		func(c *timecalc.Context) { c.PPQN = 0 },
		func(c *timecalc.Context) { c.SampleHz = 0 },
		func(c *timecalc.Context) { c.TimeSig.Bottom = 0 },
		func(c *timecalc.Context) { c.TimeSig.Top = -1 },
	}
	for i, f := range broken {
		c := testContext
		f(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %v: context %+v should not validate", i, c)
		}
	}
}
