// Package oto plays rendered float32 stereo buffers on the default audio
// device.
package oto

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/vsariola/timecalc"
)

type Context struct {
	context  *oto.Context
	sampleHz timecalc.SampleHz
}

const otoBufferSize = 100 * time.Millisecond

// NewContext opens the audio device for stereo float32 playback at the given
// sample rate. oto allows only one context per process.
func NewContext(sampleHz timecalc.SampleHz) (*Context, error) {
	op := &oto.NewContextOptions{
		SampleRate:   int(sampleHz),
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   otoBufferSize,
	}
	context, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{context: context, sampleHz: sampleHz}, nil
}

// Play plays an interleaved stereo buffer and blocks until it has been
// played.
func (c *Context) Play(buffer []float32) error {
	var b bytes.Buffer
	if err := binary.Write(&b, binary.LittleEndian, buffer); err != nil {
		return fmt.Errorf("cannot convert buffer to bytes: %w", err)
	}
	player := c.context.NewPlayer(&b)
	player.Play()
	// poll at a fraction of the device buffer, so the tail is not cut short
	for player.IsPlaying() {
		time.Sleep(otoBufferSize / 4)
	}
	if err := player.Err(); err != nil {
		return fmt.Errorf("cannot play buffer: %w", err)
	}
	if err := player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

// Duration returns how long a stereo buffer takes to play in this context.
func (c *Context) Duration(buffer []float32) timecalc.Ms {
	return timecalc.Samples(len(buffer) / 2).Ms(c.sampleHz)
}

// Close suspends the audio device. oto contexts cannot be destroyed, so the
// device stays reserved until the process exits.
func (c *Context) Close() error {
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}
