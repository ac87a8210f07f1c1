// SPDX-License-Identifier: EPL-2.0

// Package table renders raw PCM bytes as the comma-separated 0xHH text
// consumed by embedded firmware build steps.
//
// The encoding is a pure, stateless, order-preserving 1-to-1 mapping:
//
//	table.Encode([]byte{0x00, 0xAB, 0x7F})
//	// "0x00,0xAB,0x7F"
package table
