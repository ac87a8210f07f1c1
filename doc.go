// SPDX-License-Identifier: EPL-2.0

// Package wavtable turns short audio clips into C-style hex table
// listings suitable for embedding in firmware sources.
//
// # Supported Formats
//
// The package reads the following audio formats:
//   - WAV (PCM 16-bit mono) via formats/wav
//   - AIFF (PCM 16-bit mono) via formats/aiff
//
// Compressed or multi-channel audio is rejected with a descriptive
// error; the target devices play raw little-endian PCM and nothing
// else.
//
// # Quick Start
//
// The simplest way to convert a file is TableFromFile:
//
//	listing, info, err := wavtable.TableFromFile("kick.wav", 20)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// listing is "0x12,0x34,..." and info carries the source detail
//	fmt.Printf("%d Hz, %d frames\n", info.SampleRate, info.TotalFrames)
//
// Each 16-bit frame becomes two bytes in the listing, low byte first.
// Audio longer than the requested number of seconds is truncated.
//
// # Batch Conversion
//
// The convert package orchestrates whole batches with an up-front
// existence check and per-file progress reporting; the cmd/wavtable
// command is a thin wrapper around it. The split package handles the
// reverse direction, breaking a monolithic sample-bank header back
// into per-sample files.
package wavtable
