package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavtable/pcm"
)

// aiffReader is the part of aiff.Decoder the extractor consumes, split
// out as an interface to allow testing.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Extractor reads AIFF containers through github.com/go-audio/aiff.
type Extractor struct{}

// Extract validates that r holds mono 16-bit PCM AIFF and returns up to
// maxSeconds of its samples. Sample words are emitted little-endian so
// the resulting table is byte-compatible with the WAV path.
func (Extractor) Extract(r io.ReadSeeker, maxSeconds int) ([]byte, pcm.Info, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, pcm.Info{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, pcm.Info{}, ErrUnsupportedAiffLayout
	}

	info := pcm.Info{
		SampleRate:  format.SampleRate,
		Channels:    format.NumChannels,
		BitDepth:    int(dec.BitDepth),
		TotalFrames: int(dec.NumSampleFrames),
	}
	if err := pcm.Validate(info); err != nil {
		return nil, info, err
	}

	limit := pcm.FrameLimit(info.TotalFrames, info.SampleRate, maxSeconds)
	samples, err := readFrames(dec, format, limit)
	if err != nil {
		return nil, info, fmt.Errorf("reading aiff data: %w", err)
	}

	return pcm.BytesLE(samples), info, nil
}

// readFrames pulls at most limit mono samples out of the decoder.
func readFrames(dec aiffReader, format *goaudio.Format, limit int) ([]int, error) {
	samples := make([]int, 0, limit)
	buf := &goaudio.IntBuffer{
		Data:           make([]int, 4096),
		Format:         format,
		SourceBitDepth: 16,
	}

	for len(samples) < limit {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			take := n
			if take > limit-len(samples) {
				take = limit - len(samples)
			}
			samples = append(samples, buf.Data[:take]...)
		}

		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return samples, nil
}
