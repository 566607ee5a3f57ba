package timecalc

// Ticks is a duration in ticks, the finest musical time resolution; there
// are Ppqn ticks in a beat.
type Ticks int64

func (t Ticks) Value() int64 { return int64(t) }

// Bars returns the duration in bars, relative to the length of one bar in
// ticks (which is itself rounded to whole ticks).
func (t Ticks) Bars(ts TimeSig, ppqn Ppqn) float64 {
	return float64(t) / float64(Bars(1).Ticks(ts, ppqn))
}

func (t Ticks) Beats(ppqn Ppqn) float64 {
	return float64(t) / float64(ppqn)
}

func (t Ticks) Ms(bpm Bpm, ppqn Ppqn) Ms {
	return MsFromTicks(t, bpm, ppqn)
}

func (t Ticks) Samples(bpm Bpm, ppqn Ppqn, sampleHz SampleHz) Samples {
	return SamplesFromTicks(t, bpm, ppqn, sampleHz)
}
