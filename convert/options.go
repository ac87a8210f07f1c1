// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"io"

	"github.com/ik5/wavtable/formats/aiff"
	"github.com/ik5/wavtable/formats/wav"
	"github.com/ik5/wavtable/pcm"
)

const (
	// DefaultMaxFiles bounds how many inputs a single batch may carry.
	DefaultMaxFiles = 18
	// DefaultMaxSeconds bounds how much audio one file contributes.
	DefaultMaxSeconds = 20
)

// Options configures a batch run. The zero value uses the default
// limits, the default extractor registry, and discards all progress
// output.
type Options struct {
	// OutputDir redirects generated tables; empty writes each table
	// beside its input.
	OutputDir string
	// Verbose adds per-file detail lines (rate, duration, bytes).
	Verbose bool
	// MaxFiles per batch; 0 means DefaultMaxFiles.
	MaxFiles int
	// MaxSeconds per file; 0 means DefaultMaxSeconds.
	MaxSeconds int
	// Extractors maps extensions to container formats; nil means
	// DefaultExtractors().
	Extractors *pcm.Registry

	// Out receives per-file progress lines, Warn receives non-fatal
	// warnings. Either may be nil.
	Out  io.Writer
	Warn io.Writer
}

func (o *Options) setDefaults() {
	if o.MaxFiles == 0 {
		o.MaxFiles = DefaultMaxFiles
	}
	if o.MaxSeconds == 0 {
		o.MaxSeconds = DefaultMaxSeconds
	}
	if o.Extractors == nil {
		o.Extractors = DefaultExtractors()
	}
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Warn == nil {
		o.Warn = io.Discard
	}
}

// DefaultExtractors returns the registry of supported input containers.
func DefaultExtractors() *pcm.Registry {
	reg := pcm.NewRegistry()
	reg.Register("wav", wav.Extractor{})
	reg.Register("aiff", aiff.Extractor{})
	reg.Register("aif", aiff.Extractor{})

	return reg
}
