// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wavtable/table"
)

// Result describes one converted file.
type Result struct {
	Path       string
	OutPath    string
	SampleRate int
	Frames     int
	Bytes      int
	Chars      int
}

// Run converts every input path into a hex table file. The whole batch
// is a single logical transaction: exceeding the file limit or any
// missing input aborts before a single file is converted, and the first
// per-file failure aborts the rest of the run. Results for files
// already written are returned alongside the error.
func Run(paths []string, opts Options) ([]Result, error) {
	opts.setDefaults()

	if len(paths) > opts.MaxFiles {
		return nil, fmt.Errorf("%d input files, the limit is %d: %w",
			len(paths), opts.MaxFiles, ErrTooManyFiles)
	}

	// Existence gate: every input must exist before any conversion
	// starts, so a missing file never leaves a partial batch behind.
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("file not found: %w", err)
			}
			return nil, fmt.Errorf("checking input: %w", err)
		}
		if _, ok := opts.Extractors.Get(extension(p)); !ok {
			fmt.Fprintf(opts.Warn, "Warning: %s doesn't have a recognized audio extension\n", p)
		}
	}

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		res, err := convertFile(p, opts)
		if err != nil {
			return results, fmt.Errorf("processing %s: %w", p, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func convertFile(path string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	ex, ok := opts.Extractors.Get(extension(path))
	if !ok {
		// The pre-check already warned about the extension; let the
		// WAV format gate do the real rejection.
		ex, ok = opts.Extractors.Get("wav")
		if !ok {
			return Result{}, fmt.Errorf("no extractor registered for %q", extension(path))
		}
	}

	data, info, err := ex.Extract(f, opts.MaxSeconds)
	if err != nil {
		return Result{}, err
	}

	listing := table.Encode(data)

	outPath := outputPath(path, opts.OutputDir)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, err
		}
	}
	if err := os.WriteFile(outPath, []byte(listing), 0o644); err != nil {
		return Result{}, err
	}

	res := Result{
		Path:       path,
		OutPath:    outPath,
		SampleRate: info.SampleRate,
		Frames:     len(data) / 2,
		Bytes:      len(data),
		Chars:      len(listing),
	}

	if opts.Verbose {
		fmt.Fprintf(opts.Out, "Processed: %s\n", filepath.Base(path))
		fmt.Fprintf(opts.Out, "  Sample rate: %d Hz\n", res.SampleRate)
		fmt.Fprintf(opts.Out, "  Duration: %.2f seconds\n", float64(res.Frames)/float64(res.SampleRate))
		fmt.Fprintf(opts.Out, "  Bytes: %d\n", res.Bytes)
	}
	fmt.Fprintf(opts.Out, "Wrote %d bytes (%d characters) to %s\n", res.Bytes, res.Chars, outPath)

	return res, nil
}

// outputPath replaces the input extension with .txt, optionally
// redirected into dir.
func outputPath(in, dir string) string {
	out := strings.TrimSuffix(in, filepath.Ext(in)) + ".txt"
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}

	return out
}

func extension(p string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(p)), ".")
}
