// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrNotMono    = errors.New("stereo is not supported, use mono")
	ErrNot16Bit   = errors.New("only 16-bit PCM is supported")
	ErrCompressed = errors.New("compressed audio is not supported")
)
