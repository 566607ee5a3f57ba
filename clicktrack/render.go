package clicktrack

import (
	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"

	"github.com/vsariola/timecalc"
)

const (
	clickFrequency  = 1000 // Hz
	accentFrequency = 1500 // Hz
	clickLength     = timecalc.Ms(40)
	clickDecay      = 120 // 1/s
	clickGain       = 0.5
)

// Render renders the clicks into an interleaved stereo float32 buffer of the
// given length in samples. Clicks, or parts of them, outside the buffer are
// dropped.
func Render(ctx timecalc.Context, clicks []Click, length timecalc.Samples) []float32 {
	if length <= 0 {
		return []float32{}
	}
	mono := make([]float32, length)
	n := clickLength.Samples(ctx.SampleHz)
	normal := blip(clickFrequency, n, ctx.SampleHz)
	accent := blip(accentFrequency, n, ctx.SampleHz)
	for _, c := range clicks {
		if c.Sample < 0 || c.Sample >= length {
			continue
		}
		src := normal
		if c.Accent {
			src = accent
		}
		dst := mono[c.Sample:min(c.Sample+timecalc.Samples(len(src)), length)]
		vek32.Add_Inplace(dst, src[:len(dst)])
	}
	stereo := make([]float32, 2*len(mono))
	for i, v := range mono {
		stereo[2*i] = v
		stereo[2*i+1] = v
	}
	return stereo
}

// blip is a decaying sine, n samples long.
func blip(frequency float32, n timecalc.Samples, sampleHz timecalc.SampleHz) []float32 {
	if n < 0 {
		n = 0
	}
	ret := make([]float32, n)
	for i := range ret {
		t := float32(i) / float32(sampleHz)
		ret[i] = math32.Sin(2*math32.Pi*frequency*t) * math32.Exp(-clickDecay*t)
	}
	vek32.MulNumber_Inplace(ret, clickGain)
	return ret
}
