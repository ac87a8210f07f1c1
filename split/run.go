// SPDX-License-Identifier: EPL-2.0

package split

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Options configures a splitter run. The zero value writes .h files
// into a "samples" directory and discards progress output.
type Options struct {
	// OutputDir receives one header per valid array plus the index.
	OutputDir string
	// Ext is the extension for generated files, without the dot.
	Ext string
	// Log receives found/skipped/created notices. May be nil.
	Log io.Writer
}

func (o *Options) setDefaults() {
	if o.OutputDir == "" {
		o.OutputDir = "samples"
	}
	if o.Ext == "" {
		o.Ext = "h"
	}
	if o.Log == nil {
		o.Log = io.Discard
	}
}

// Run splits the monolithic header at inputPath into one header per
// valid sample array plus the master index artifact. It returns the
// names of the arrays written, in first-seen order.
func Run(inputPath string, opts Options) ([]string, error) {
	opts.setDefaults()

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input file not found: %w", err)
		}
		return nil, fmt.Errorf("reading input: %w", err)
	}

	samples, skipped := Extract(string(raw))
	fmt.Fprintf(opts.Log, "Found %d sample arrays\n", len(samples)+len(skipped))
	for _, name := range skipped {
		fmt.Fprintf(opts.Log, "Skipping empty sample: %s\n", name)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	names := make([]string, 0, len(samples))
	for _, s := range samples {
		outPath := filepath.Join(opts.OutputDir, s.Name+"."+opts.Ext)
		if err := os.WriteFile(outPath, []byte(HeaderFile(s)), 0o644); err != nil {
			return names, fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintf(opts.Log, "Created: %s\n", outPath)
		names = append(names, s.Name)
	}

	indexPath := filepath.Join(opts.OutputDir, "samples."+opts.Ext)
	if err := os.WriteFile(indexPath, []byte(IndexFile(samples, opts.Ext)), 0o644); err != nil {
		return names, fmt.Errorf("writing %s: %w", indexPath, err)
	}
	fmt.Fprintf(opts.Log, "Created master include file: %s\n", indexPath)

	return names, nil
}
