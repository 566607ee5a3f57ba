package clicktrack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/vsariola/timecalc"
)

const numChannels = 2

// Wav encodes an interleaved stereo buffer as a .wav file with the given
// sample rate. If pcm16 is true, the samples are converted to 16-bit signed
// integers; otherwise they are stored as 32-bit floats.
func Wav(buffer []float32, sampleHz timecalc.SampleHz, pcm16 bool) ([]byte, error) {
	if !(sampleHz > 0) || sampleHz > math.MaxUint32/8 {
		return nil, fmt.Errorf("Wav failed: unsupported sample rate %v", sampleHz)
	}
	if len(buffer)%numChannels != 0 {
		return nil, fmt.Errorf("Wav failed: %v values is not an interleaved stereo buffer", len(buffer))
	}
	buf := new(bytes.Buffer)
	wavHeader(timecalc.Samples(len(buffer)/numChannels), uint32(sampleHz), pcm16, buf)
	if err := writeSamples(buffer, pcm16, buf); err != nil {
		return nil, fmt.Errorf("Wav failed: %v", err)
	}
	return buf.Bytes(), nil
}

// Raw encodes the buffer as headerless little-endian float32 or int16 data.
func Raw(buffer []float32, pcm16 bool) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeSamples(buffer, pcm16, buf); err != nil {
		return nil, fmt.Errorf("Raw failed: %v", err)
	}
	return buf.Bytes(), nil
}

func writeSamples(buffer []float32, pcm16 bool, buf *bytes.Buffer) error {
	var data interface{} = buffer
	if pcm16 {
		data = toInt16(buffer)
	}
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("could not encode samples: %v", err)
	}
	return nil
}

// toInt16 scales [-1, 1] to the int16 range, saturating outside it.
func toInt16(buffer []float32) []int16 {
	ret := make([]int16, len(buffer))
	for i, v := range buffer {
		ret[i] = int16(max(min(int(v*math.MaxInt16), math.MaxInt16), math.MinInt16))
	}
	return ret
}

// wavHeader writes the header of a stereo .wav file of the given number of
// sample frames. float32 files get the extended fmt chunk and a fact chunk,
// as required for non-PCM formats.
func wavHeader(frames timecalc.Samples, sampleRate uint32, pcm16 bool, buf *bytes.Buffer) {
	// Refer to: http://www-mmsp.ece.mcgill.ca/Documents/AudioFormats/WAVE/WAVE.html
	bytesPerValue, fmtChunkSize, waveFormat, headerRest := 4, 18, 3, 50 // IEEE float
	if pcm16 {
		bytesPerValue, fmtChunkSize, waveFormat, headerRest = 2, 16, 1, 36 // PCM
	}
	blockAlign := numChannels * bytesPerValue
	dataSize := uint32(frames.Value()) * uint32(blockAlign)
	le := func(v interface{}) { binary.Write(buf, binary.LittleEndian, v) }
	buf.WriteString("RIFF")
	le(uint32(headerRest) + dataSize)
	buf.WriteString("WAVEfmt ")
	le(uint32(fmtChunkSize))
	le(uint16(waveFormat))
	le(uint16(numChannels))
	le(sampleRate)
	le(sampleRate * uint32(blockAlign)) // avgBytesPerSec
	le(uint16(blockAlign))
	le(uint16(8 * bytesPerValue)) // bits per sample
	if !pcm16 {
		le(uint16(0)) // size of extension
		buf.WriteString("fact")
		le(uint32(4))
		le(uint32(frames.Value() * numChannels)) // sample length, as in the float32 buffer
	}
	buf.WriteString("data")
	le(dataSize)
}
