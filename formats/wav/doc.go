// SPDX-License-Identifier: EPL-2.0

// Package wav extracts raw PCM bytes from WAV containers for table
// generation, and writes mono 16-bit PCM WAV files.
//
// Decoding goes through github.com/go-audio/wav; the Extractor only
// adds the format gate (mono, 16-bit, uncompressed) and the duration
// cap on top of it.
//
// # Extracting
//
//	f, _ := os.Open("kick.wav")
//	defer f.Close()
//
//	data, info, err := wav.Extractor{}.Extract(f, 20)
//	if errors.Is(err, pcm.ErrNotMono) {
//	    // stereo input, reject
//	}
//	// data holds up to 20 seconds of little-endian PCM bytes
//
// # Writing
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("clip.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Errors
//
// ErrNotWavFile reports input that is not a RIFF/WAVE container at all;
// format constraint violations surface as the pcm package sentinels
// (pcm.ErrNotMono, pcm.ErrNot16Bit, pcm.ErrCompressed).
package wav
