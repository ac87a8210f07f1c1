// SPDX-License-Identifier: EPL-2.0

package split

import (
	"fmt"
	"strings"
)

const entriesPerLine = 16

// formatValues lays byte literals out 16 per line, indented four
// spaces, with a trailing comma on every line but the last.
func formatValues(values []string) string {
	var lines []string
	for i := 0; i < len(values); i += entriesPerLine {
		end := min(i+entriesPerLine, len(values))

		line := "    " + strings.Join(values[i:end], ", ")
		if end < len(values) {
			line += ","
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// HeaderFile renders the self-contained header artifact for one sample
// array: include guard, reformatted declaration, and a length macro
// counting 16-bit units (two bytes each).
func HeaderFile(s Sample) string {
	upper := strings.ToUpper(s.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "#ifndef %s_H\n#define %s_H\n\n", upper, upper)
	sb.WriteString("#include <pgmspace.h>\n\n")
	fmt.Fprintf(&sb, "// Sample data for %s\n", s.Name)
	fmt.Fprintf(&sb, "const uint8_t %s[] PROGMEM = {\n%s\n};\n\n", s.Name, formatValues(s.Values))
	sb.WriteString("// Sample length in 16-bit units\n")
	fmt.Fprintf(&sb, "#define %s_LEN ((uint32_t)(sizeof(%s) / 2))\n\n", upper, s.Name)
	fmt.Fprintf(&sb, "#endif // %s_H\n", upper)

	return sb.String()
}

// IndexFile renders the master artifact referencing every valid array:
// one include per header, an ordered pointer collection, the parallel
// length collection, and the count macro. ext is the extension the
// per-array headers were written with.
func IndexFile(samples []Sample, ext string) string {
	var sb strings.Builder
	sb.WriteString("#ifndef SAMPLES_H\n#define SAMPLES_H\n\n")
	sb.WriteString("// Include all individual sample headers\n")
	for _, s := range samples {
		fmt.Fprintf(&sb, "#include \"%s.%s\"\n", s.Name, ext)
	}

	sb.WriteString("\n// Array of sample pointers for easy access\n")
	sb.WriteString("const uint8_t* const samples[] = {\n")
	for i, s := range samples {
		fmt.Fprintf(&sb, "    %s%s\n", s.Name, listComma(i, len(samples)))
	}
	sb.WriteString("};\n\n")

	sb.WriteString("// Array of sample lengths\n")
	sb.WriteString("const uint16_t sample_lengths[] = {\n")
	for i, s := range samples {
		fmt.Fprintf(&sb, "    %s_LEN%s\n", strings.ToUpper(s.Name), listComma(i, len(samples)))
	}
	sb.WriteString("};\n\n")

	sb.WriteString("#define NUM_SAMPLES (sizeof(samples) / sizeof(samples[0]))\n\n")
	sb.WriteString("#endif // SAMPLES_H\n")

	return sb.String()
}

func listComma(i, total int) string {
	if i < total-1 {
		return ","
	}

	return ""
}
