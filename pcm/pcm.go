// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"io"
	"sync"
)

// Info describes the PCM stream found inside an audio container.
type Info struct {
	// SampleRate of the stream in Hz.
	SampleRate int
	// Channels count (1=mono, 2=stereo).
	Channels int
	// BitDepth per sample in bits.
	BitDepth int
	// Compressed is true when the container carries anything other
	// than plain PCM.
	Compressed bool
	// TotalFrames in the stream. For mono 16-bit audio one frame is
	// two bytes.
	TotalFrames int
}

// Extractor pulls raw little-endian PCM bytes out of a container format.
// At most maxSeconds worth of frames are returned; a shorter stream is
// returned whole.
type Extractor interface {
	Extract(r io.ReadSeeker, maxSeconds int) ([]byte, Info, error)
}

// Registry for extractors by file extension (e.g., "wav", "aiff").
type Registry struct {
	formats map[string]Extractor

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		formats: make(map[string]Extractor),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, e Extractor) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.formats[ext] = e
}

func (r *Registry) Get(ext string) (Extractor, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.formats[ext]
	return e, ok
}
