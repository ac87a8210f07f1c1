// SPDX-License-Identifier: EPL-2.0

package pcm

// Validate checks that a stream is mono, 16-bit, uncompressed PCM.
// The channel count is checked first so that stereo input always
// reports ErrNotMono regardless of its other attributes.
func Validate(info Info) error {
	if info.Channels != 1 {
		return ErrNotMono
	}
	if info.BitDepth != 16 {
		return ErrNot16Bit
	}
	if info.Compressed {
		return ErrCompressed
	}

	return nil
}
