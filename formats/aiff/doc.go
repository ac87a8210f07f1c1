// SPDX-License-Identifier: EPL-2.0

// Package aiff extracts raw PCM bytes from AIFF containers for table
// generation.
//
// The same constraints apply as for WAV input: mono, 16-bit,
// uncompressed PCM. AIFF stores samples big-endian on disk; the
// extractor emits them little-endian so tables generated from .aiff
// and .wav sources are interchangeable in firmware.
package aiff
