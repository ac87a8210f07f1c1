// SPDX-License-Identifier: EPL-2.0

package ui

import "errors"

var (
	// ErrCancelled is returned when the user leaves the picker without
	// confirming a selection.
	ErrCancelled = errors.New("cancelled by user")
	// ErrNoWAVFiles is returned when the scanned directory holds no
	// .wav files to offer.
	ErrNoWAVFiles = errors.New("no wav files found")
)
