// SPDX-License-Identifier: EPL-2.0

package pcm

// FrameLimit returns how many frames to pull from a stream of total
// frames at rate Hz, capped at maxSeconds of audio. rate and maxSeconds
// are integers, so the product is an exact frame count.
func FrameLimit(total, rate, maxSeconds int) int {
	limit := rate * maxSeconds
	if limit < 0 {
		return 0
	}
	if total < limit {
		return total
	}

	return limit
}
