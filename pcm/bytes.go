// SPDX-License-Identifier: EPL-2.0

package pcm

import "encoding/binary"

// BytesLE converts 16-bit samples to their little-endian byte layout,
// two bytes per sample, order preserving. Sample values outside the
// int16 range are truncated to their low 16 bits.
func BytesLE(samples []int) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(int16(s)))
	}

	return out
}
