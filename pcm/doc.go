// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the data model and the pure pipeline stages shared
// by every converter front end.
//
// A container format (see formats/wav and formats/aiff) implements the
// Extractor interface: it reads a stream, describes it with Info, and
// hands back raw little-endian PCM bytes. Extractors are looked up by
// file extension through a Registry.
//
// The pipeline stages are plain functions with no hidden state:
//
//   - Validate rejects anything that is not mono, 16-bit, uncompressed
//     PCM, returning the sentinel error for the first violated
//     constraint.
//   - FrameLimit computes min(rate*maxSeconds, total) — the truncation
//     point that caps how much audio a single file contributes.
//   - BytesLE lays 16-bit samples out as little-endian bytes, the form
//     the hex table encoder consumes.
//
// Error values are sentinels and compare with errors.Is:
//
//	_, info, err := extractor.Extract(f, 20)
//	if errors.Is(err, pcm.ErrNotMono) {
//	    // stereo input
//	}
package pcm
