// SPDX-License-Identifier: EPL-2.0

package audiotest

import "encoding/binary"

// BuildWAV is a test helper that builds an in-memory WAV container with
// the given fmt-chunk parameters. Sample data is a deterministic ramp so
// tests can assert exact bytes. format is the fmt-chunk audio format tag
// (1 = PCM; anything else marks the file as compressed).
func BuildWAV(format, channels, sampleRate, bitsPerSample, frames int) []byte {
	bytesPerSample := bitsPerSample / 8
	blockAlign := channels * bytesPerSample
	byteRate := sampleRate * blockAlign
	dataSize := frames * blockAlign

	buf := make([]byte, 44+dataSize)

	// RIFF header
	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")

	// fmt chunk
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], uint16(format))
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(bitsPerSample))

	// data chunk
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataSize))

	offset := 44
	for i := range frames {
		for range channels {
			switch bytesPerSample {
			case 1:
				buf[offset] = byte(i)
				offset++
			default:
				binary.LittleEndian.PutUint16(buf[offset:offset+2], uint16(int16(Ramp(i))))
				offset += 2
			}
		}
	}

	return buf
}

// BuildMonoWAV16 builds a valid mono 16-bit PCM WAV with frames ramp
// samples, the shape every happy-path test consumes.
func BuildMonoWAV16(sampleRate, frames int) []byte {
	return BuildWAV(1, 1, sampleRate, 16, frames)
}

// Ramp is the deterministic sample value written at frame index i.
func Ramp(i int) int {
	return int(int16(i * 3))
}

// RampBytesLE returns the little-endian byte layout of the first frames
// ramp samples, matching what BuildMonoWAV16 stores in its data chunk.
func RampBytesLE(frames int) []byte {
	out := make([]byte, frames*2)
	for i := range frames {
		binary.LittleEndian.PutUint16(out[i*2:i*2+2], uint16(int16(Ramp(i))))
	}

	return out
}
