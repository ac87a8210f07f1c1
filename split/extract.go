// SPDX-License-Identifier: EPL-2.0

package split

import (
	"regexp"
	"strings"
)

// Sample is one named byte-array declaration extracted from source text.
type Sample struct {
	Name   string
	Values []string
}

var (
	declPattern  = regexp.MustCompile(`const uint8_t (sample\d+)\[\] PROGMEM = \{([^}]+)\};`)
	blockComment = regexp.MustCompile(`/\*[^*]*\*/`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// placeholderMarker flags arrays that carry no real payload. It is a
// case-insensitive substring match, a heuristic kept as-is from the
// firmware sources rather than a format guarantee.
const placeholderMarker = "placeholder"

// Extract locates every sample array declaration in text, in order of
// appearance. Payloads are cleaned (block comments stripped, whitespace
// runs collapsed); arrays whose cleaned payload is empty or contains
// the placeholder marker are dropped and reported in skipped.
func Extract(text string) (samples []Sample, skipped []string) {
	for _, m := range declPattern.FindAllStringSubmatch(text, -1) {
		name, body := m[1], m[2]

		cleaned := blockComment.ReplaceAllString(body, "")
		cleaned = spaceRun.ReplaceAllString(strings.TrimSpace(cleaned), " ")

		if cleaned == "" || strings.Contains(strings.ToLower(cleaned), placeholderMarker) {
			skipped = append(skipped, name)
			continue
		}

		samples = append(samples, Sample{Name: name, Values: strings.Split(cleaned, ", ")})
	}

	return samples, skipped
}
