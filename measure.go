package timecalc

import "fmt"

// Measure is a generalized musical duration: Num units of the division Div,
// each shortened to two thirds if DivType is TwoThirds. All the conversions
// between the duration axes pivot through it; Bars(n) is Measure{n, Bar,
// Whole} and Beats(n) is Measure{n, Beat, Whole}.
type Measure struct {
	Num     NumDiv
	Div     Division
	DivType DivType
}

// Beats returns the duration in beats (quarter notes).
func (m Measure) Beats(ts TimeSig) float64 {
	return m.Div.Beats(ts) * float64(m.Num) * m.DivType.Multiplier()
}

// Bars returns the duration in bars. It is recomputed for the given time
// signature every time.
func (m Measure) Bars(ts TimeSig) float64 {
	return m.Beats(ts) / Measure{1, Bar, Whole}.Beats(ts)
}

func (m Measure) Ms(bpm Bpm, ts TimeSig) Ms {
	return MsFromMeasure(m.Num, m.Div, m.DivType, bpm, ts)
}

func (m Measure) Samples(bpm Bpm, ts TimeSig, sampleHz SampleHz) Samples {
	return SamplesFromMeasure(m.Num, m.Div, m.DivType, bpm, ts, sampleHz)
}

func (m Measure) Ticks(ts TimeSig, ppqn Ppqn) Ticks {
	return TicksFromMeasure(m.Num, m.Div, m.DivType, ts, ppqn)
}

// String returns e.g. "3 Quaver TwoThirds".
func (m Measure) String() string {
	return fmt.Sprintf("%d %v %v", m.Num, m.Div, m.DivType)
}
