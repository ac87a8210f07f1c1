// SPDX-License-Identifier: EPL-2.0

package wavtable

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wavtable/convert"
	"github.com/ik5/wavtable/pcm"
	"github.com/ik5/wavtable/table"
)

// Table converts already-opened audio into its hex listing. format
// selects the extractor by name ("wav", "aiff", "aif"); unknown
// formats fall back to the WAV extractor. maxSeconds caps the audio
// kept from the source.
func Table(r io.ReadSeeker, format string, maxSeconds int) (string, pcm.Info, error) {
	reg := convert.DefaultExtractors()

	extractor, ok := reg.Get(strings.ToLower(format))
	if !ok {
		extractor, _ = reg.Get("wav")
	}

	data, info, err := extractor.Extract(r, maxSeconds)
	if err != nil {
		return "", info, err
	}

	return table.Encode(data), info, nil
}

// TableFromFile converts the audio file at path into its hex listing.
// The extractor is chosen by the file extension.
func TableFromFile(path string, maxSeconds int) (string, pcm.Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", pcm.Info{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	listing, info, err := Table(file, format, maxSeconds)
	if err != nil {
		return "", info, fmt.Errorf("converting %s: %w", path, err)
	}

	return listing, info, nil
}
