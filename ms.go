package timecalc

import "math"

// Ms is a duration in milliseconds. Being a float, Ms values compare with the
// usual float64 semantics: NaN is not equal to anything, including itself.
type Ms float64

func (m Ms) Value() float64 { return float64(m) }

func (m Ms) Bars(bpm Bpm, ts TimeSig) float64 {
	return float64(m / Bars(1).Ms(bpm, ts))
}

func (m Ms) Beats(bpm Bpm) float64 {
	return float64(m / Beats(1).Ms(bpm))
}

// Samples returns the number of samples, truncated towards zero.
func (m Ms) Samples(sampleHz SampleHz) Samples {
	return SamplesFromMs(m, sampleHz)
}

// Ticks returns the number of ticks, rounded to the nearest tick.
func (m Ms) Ticks(bpm Bpm, ppqn Ppqn) Ticks {
	return TicksFromMs(m, bpm, ppqn)
}

// Rem returns the floating-point remainder of m/d, with the sign of m. Go
// has no % operator for floats.
func (m Ms) Rem(d Ms) Ms {
	return Ms(math.Mod(float64(m), float64(d)))
}
