package timecalc

// Samples is a duration in audio samples.
type Samples int64

func (s Samples) Value() int64 { return int64(s) }

// Bars returns the duration in bars, relative to the length of one bar in
// samples (which is itself truncated to whole samples).
func (s Samples) Bars(bpm Bpm, ts TimeSig, sampleHz SampleHz) float64 {
	return float64(s) / float64(Bars(1).Samples(bpm, ts, sampleHz))
}

func (s Samples) Beats(bpm Bpm, sampleHz SampleHz) float64 {
	return float64(s) / float64(Beats(1).Samples(bpm, sampleHz))
}

func (s Samples) Ms(sampleHz SampleHz) Ms {
	return MsFromSamples(s, sampleHz)
}

func (s Samples) Ticks(bpm Bpm, ppqn Ppqn, sampleHz SampleHz) Ticks {
	return TicksFromSamples(s, bpm, ppqn, sampleHz)
}
