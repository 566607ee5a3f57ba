package timecalc

// Bars is a number of bars, a shorthand for Measure{n, Bar, Whole}. The
// length of a bar depends on the time signature, so every conversion out of
// Bars needs one.
type Bars NumDiv

func (b Bars) Value() NumDiv { return NumDiv(b) }

// Beats returns the duration in beats under the time signature ts.
func (b Bars) Beats(ts TimeSig) float64 {
	return b.Measure().Beats(ts)
}

func (b Bars) Measure() Measure {
	return Measure{NumDiv(b), Bar, Whole}
}

func (b Bars) Ms(bpm Bpm, ts TimeSig) Ms {
	return MsFromMeasure(NumDiv(b), Bar, Whole, bpm, ts)
}

func (b Bars) Samples(bpm Bpm, ts TimeSig, sampleHz SampleHz) Samples {
	return SamplesFromMeasure(NumDiv(b), Bar, Whole, bpm, ts, sampleHz)
}

func (b Bars) Ticks(ts TimeSig, ppqn Ppqn) Ticks {
	return TicksFromMeasure(NumDiv(b), Bar, Whole, ts, ppqn)
}
