package timecalc

import (
	"errors"
	"fmt"
)

// Context bundles the tempo, tick resolution, sample rate and time signature
// for code that converts many durations under the same parameters. It is
// only a convenience: every method just forwards to the parameter-explicit
// function of the same name.
type Context struct {
	BPM      Bpm      `yaml:"bpm" json:"bpm"`
	PPQN     Ppqn     `yaml:"ppqn" json:"ppqn"`
	SampleHz SampleHz `yaml:"samplehz" json:"samplehz"`
	TimeSig  TimeSig  `yaml:"timesig" json:"timesig"`
}

func (c Context) BeatInMs() Ms { return BeatInMs(c.BPM) }
func (c Context) BarInMs() Ms  { return BarInMs(c.BPM, c.TimeSig) }
func (c Context) TickInMs() Ms { return TickInMs(c.BPM, c.PPQN) }

func (c Context) Ms(m Measure) Ms {
	return m.Ms(c.BPM, c.TimeSig)
}

func (c Context) Samples(m Measure) Samples {
	return m.Samples(c.BPM, c.TimeSig, c.SampleHz)
}

func (c Context) Ticks(m Measure) Ticks {
	return m.Ticks(c.TimeSig, c.PPQN)
}

func (c Context) MsFromTicks(t Ticks) Ms {
	return MsFromTicks(t, c.BPM, c.PPQN)
}

func (c Context) SamplesFromTicks(t Ticks) Samples {
	return SamplesFromTicks(t, c.BPM, c.PPQN, c.SampleHz)
}

func (c Context) TicksFromMs(ms Ms) Ticks {
	return TicksFromMs(ms, c.BPM, c.PPQN)
}

func (c Context) TicksFromSamples(s Samples) Ticks {
	return TicksFromSamples(s, c.BPM, c.PPQN, c.SampleHz)
}

// Validate checks that the context is inside the domain the conversions are
// defined for: positive BPM, PPQN and sample rate and a time signature with
// positive top and bottom. The conversions themselves never call this.
func (c Context) Validate() error {
	if !(c.BPM > 0) {
		return fmt.Errorf("BPM should be > 0, got %v", c.BPM)
	}
	if c.PPQN == 0 {
		return errors.New("PPQN should be > 0")
	}
	if !(c.SampleHz > 0) {
		return fmt.Errorf("sample rate should be > 0, got %v", c.SampleHz)
	}
	if c.TimeSig.Top <= 0 || c.TimeSig.Bottom <= 0 {
		return fmt.Errorf("time signature %v should have a positive top and bottom", c.TimeSig)
	}
	return nil
}
