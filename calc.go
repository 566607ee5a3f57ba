package timecalc

import "math"

type (
	// Bpm is the tempo in beats (quarter notes) per minute.
	Bpm = float64

	// Ppqn is the tick resolution: parts (ticks) per quarter note.
	Ppqn = uint32

	// SampleHz is the audio sample rate in samples per second.
	SampleHz = float64
)

const (
	MinuteInMs = 60_000.0
	SecondInMs = 1_000.0
)

// BarInMs returns the duration of a bar in milliseconds.
func BarInMs(bpm Bpm, ts TimeSig) Ms {
	return BeatInMs(bpm) * Ms(ts.BeatsPerBar())
}

// BeatInMs returns the duration of a beat in milliseconds.
func BeatInMs(bpm Bpm) Ms {
	return Ms(MinuteInMs / bpm)
}

// TickInMs returns the duration of a tick in milliseconds.
func TickInMs(bpm Bpm, ppqn Ppqn) Ms {
	return BeatInMs(bpm) / Ms(ppqn)
}

// MsFromMeasure returns the duration of num divisions in milliseconds.
func MsFromMeasure(num NumDiv, div Division, divType DivType, bpm Bpm, ts TimeSig) Ms {
	return Ms(Measure{num, div, divType}.Beats(ts)) * BeatInMs(bpm)
}

// MsFromSamples returns the duration of the given number of samples in
// milliseconds.
func MsFromSamples(samples Samples, sampleHz SampleHz) Ms {
	return Ms(float64(samples) * SecondInMs / sampleHz)
}

// MsFromTicks returns the duration of the given number of ticks in
// milliseconds.
func MsFromTicks(ticks Ticks, bpm Bpm, ppqn Ppqn) Ms {
	return TickInMs(bpm, ppqn) * Ms(ticks)
}

// SamplesFromMeasure returns the duration of num divisions in samples.
func SamplesFromMeasure(num NumDiv, div Division, divType DivType, bpm Bpm, ts TimeSig, sampleHz SampleHz) Samples {
	return SamplesFromMs(MsFromMeasure(num, div, divType, bpm, ts), sampleHz)
}

// SamplesFromMs returns the number of samples in the given duration. The
// result is truncated towards zero, not rounded.
func SamplesFromMs(ms Ms, sampleHz SampleHz) Samples {
	return Samples(float64(ms) * sampleHz / SecondInMs)
}

// SamplesFromTicks returns the duration of the given number of ticks in
// samples.
func SamplesFromTicks(ticks Ticks, bpm Bpm, ppqn Ppqn, sampleHz SampleHz) Samples {
	return SamplesFromMs(MsFromTicks(ticks, bpm, ppqn), sampleHz)
}

// TicksFromMeasure returns the duration of num divisions in ticks, rounded to
// the nearest tick (halves away from zero). Unlike the sample conversions,
// which truncate, all conversions producing ticks round.
func TicksFromMeasure(num NumDiv, div Division, divType DivType, ts TimeSig, ppqn Ppqn) Ticks {
	quarters := div.Beats(ts) * float64(num)
	if divType == TwoThirds {
		quarters = quarters * 2.0 / 3.0
	}
	return Ticks(math.Round(quarters * float64(ppqn)))
}

// TicksFromMs returns the number of ticks in the given duration, rounded to
// the nearest tick.
func TicksFromMs(ms Ms, bpm Bpm, ppqn Ppqn) Ticks {
	return Ticks(math.Round(float64(ms / TickInMs(bpm, ppqn))))
}

// TicksFromSamples returns the number of ticks in the given number of
// samples.
func TicksFromSamples(samples Samples, bpm Bpm, ppqn Ppqn, sampleHz SampleHz) Ticks {
	return TicksFromMs(MsFromSamples(samples, sampleHz), bpm, ppqn)
}
