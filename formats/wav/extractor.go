package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/wavtable/pcm"
)

// Extractor reads WAV containers through github.com/go-audio/wav.
type Extractor struct{}

// Extract validates that r holds mono 16-bit uncompressed PCM and
// returns up to maxSeconds of its raw little-endian bytes. The header
// is checked before any sample data is decoded, so a rejected file
// costs only the header parse.
func (Extractor) Extract(r io.ReadSeeker, maxSeconds int) ([]byte, pcm.Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, pcm.Info{}, ErrNotWavFile
	}

	info := pcm.Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Compressed: dec.WavAudioFormat != 1,
	}
	if err := pcm.Validate(info); err != nil {
		return nil, info, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, info, fmt.Errorf("reading wav data: %w", err)
	}

	// Mono is enforced above, so one sample per frame.
	info.TotalFrames = len(buf.Data)
	frames := pcm.FrameLimit(info.TotalFrames, info.SampleRate, maxSeconds)

	return pcm.BytesLE(buf.Data[:frames]), info, nil
}
