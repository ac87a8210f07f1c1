// SPDX-License-Identifier: EPL-2.0

// Package split breaks a monolithic firmware header holding several
// sampleN byte arrays into one self-contained header per array plus a
// master index header.
//
// Extraction is a single anchored pattern match per array; the
// declaration grammar is fixed, so no tokenizer is involved. Arrays
// whose payload is empty or marked as a placeholder are skipped with a
// notice and never reach the index.
package split
