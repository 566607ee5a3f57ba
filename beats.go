package timecalc

// Beats is a number of beats (quarter notes), a shorthand for Measure{n,
// Beat, Whole}. A beat does not depend on the meter, so only the conversion
// to Bars needs a time signature.
type Beats NumDiv

func (b Beats) Value() NumDiv { return NumDiv(b) }

// Bars returns the duration in bars under the time signature ts.
func (b Beats) Bars(ts TimeSig) float64 {
	return b.Measure().Bars(ts)
}

func (b Beats) Measure() Measure {
	return Measure{NumDiv(b), Beat, Whole}
}

func (b Beats) Ms(bpm Bpm) Ms {
	return Ms(b) * BeatInMs(bpm)
}

func (b Beats) Samples(bpm Bpm, sampleHz SampleHz) Samples {
	return SamplesFromMs(b.Ms(bpm), sampleHz)
}

// Ticks returns the duration in ticks. This is exact: a beat is always ppqn
// ticks.
func (b Beats) Ticks(ppqn Ppqn) Ticks {
	return Ticks(b) * Ticks(ppqn)
}
