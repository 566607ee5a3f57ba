package clicktrack

import (
	"errors"
	"fmt"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/vsariola/timecalc"
)

const (
	drumChannel    = 9  // channel 10 in General MIDI numbering
	accentKey      = 76 // hi wood block
	clickKey       = 77 // low wood block
	accentVelocity = 127
	clickVelocity  = 90

	// SMF resolution is 15 bits; the top bit selects SMPTE time.
	maxPPQN = 0x7FFF
)

// SMF builds a single track Standard MIDI File of the clicks, with the time
// signature and tempo of the context as meta events. Each click is a note on
// the General MIDI drum channel, lasting half a pulse. The clicks should be
// in order, as returned by Clicks. The PPQN must divide one pulse into a
// whole number of ticks, e.g. at least 2 for 7/8.
func SMF(ctx timecalc.Context, clicks []Click) (*smf.SMF, error) {
	if ctx.PPQN == 0 || ctx.PPQN > maxPPQN {
		return nil, fmt.Errorf("PPQN %v does not fit in a midi file", ctx.PPQN)
	}
	if ctx.TimeSig.Top <= 0 || ctx.TimeSig.Top > 255 || ctx.TimeSig.Bottom <= 0 || ctx.TimeSig.Bottom > 255 {
		return nil, fmt.Errorf("time signature %v does not fit in a midi file", ctx.TimeSig)
	}
	pulse, ok := ctx.TimeSig.Pulse()
	if !ok {
		return nil, fmt.Errorf("time signature %v has no pulse division to click on", ctx.TimeSig)
	}
	// a pulse must be a whole number of ticks, otherwise rounding makes
	// neighbouring clicks collide
	if pulseTicks := pulse.Beats(ctx.TimeSig) * float64(ctx.PPQN); pulseTicks < 1 || pulseTicks != math.Trunc(pulseTicks) {
		return nil, fmt.Errorf("PPQN %v is too coarse for %v: a pulse would be %v ticks, should be a whole number", ctx.PPQN, ctx.TimeSig, pulseTicks)
	}
	noteLength := ctx.Ticks(timecalc.Measure{Num: 1, Div: pulse, DivType: timecalc.Whole}) / 2
	if noteLength < 1 {
		noteLength = 1
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ctx.PPQN)
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName("click"))
	track.Add(0, smf.MetaMeter(uint8(ctx.TimeSig.Top), uint8(ctx.TimeSig.Bottom)))
	track.Add(0, smf.MetaTempo(ctx.BPM))
	var last timecalc.Ticks
	for _, c := range clicks {
		if c.Tick < last {
			return nil, errors.New("clicks overlap or are not in order")
		}
		key, velocity := uint8(clickKey), uint8(clickVelocity)
		if c.Accent {
			key, velocity = accentKey, accentVelocity
		}
		track.Add(uint32(c.Tick-last), midi.NoteOn(drumChannel, key, velocity))
		track.Add(uint32(noteLength), midi.NoteOff(drumChannel, key))
		last = c.Tick + noteLength
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track to midi file: %v", err)
	}
	return s, nil
}

// ContextFromSMF reads the tick resolution, the first tempo and the first
// time signature of a midi file into a Context. Missing tempo and time
// signature default to 120 BPM and 4/4, as in the midi standard.
func ContextFromSMF(s *smf.SMF, sampleHz timecalc.SampleHz) (timecalc.Context, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return timecalc.Context{}, errors.New("midi file does not use metric ticks")
	}
	ctx := timecalc.Context{
		BPM:      120,
		PPQN:     timecalc.Ppqn(ticks),
		SampleHz: sampleHz,
		TimeSig:  timecalc.TimeSig{Top: 4, Bottom: 4},
	}
	var tempoFound, meterFound bool
	for _, track := range s.Tracks {
		for _, ev := range track {
			var bpm float64
			var num, denom uint8
			if !tempoFound && ev.Message.GetMetaTempo(&bpm) {
				ctx.BPM = bpm
				tempoFound = true
			}
			if !meterFound && ev.Message.GetMetaMeter(&num, &denom) {
				ctx.TimeSig = timecalc.TimeSig{Top: int(num), Bottom: int(denom)}
				meterFound = true
			}
		}
	}
	if err := ctx.Validate(); err != nil {
		return timecalc.Context{}, fmt.Errorf("invalid context in midi file: %v", err)
	}
	return ctx, nil
}
