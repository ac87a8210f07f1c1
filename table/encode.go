// SPDX-License-Identifier: EPL-2.0

package table

const hexDigits = "0123456789ABCDEF"

// Encode renders raw bytes as a comma-separated hex table: every byte
// becomes an uppercase 0xHH entry, entries are joined by single commas
// with no trailing separator and no line breaks. The result is exactly
// 5*len(b)-1 characters for non-empty input (four characters per entry
// plus len(b)-1 commas); an empty input yields an empty string.
//
// This uses an optimized implementation for minimal allocations.
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	out := make([]byte, 0, len(b)*5-1)
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '0', 'x', hexDigits[v>>4], hexDigits[v&0x0F])
	}

	return string(out)
}
