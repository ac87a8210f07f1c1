// SPDX-License-Identifier: EPL-2.0

// Command wavtable converts mono 16-bit PCM audio files into hex table
// text files, one .txt per input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavtable/convert"
)

var (
	outputDir  = flag.String("o", "", "directory for generated .txt files (default: beside each input)")
	verbose    = flag.Bool("v", false, "print per-file detail")
	maxSeconds = flag.Int("max-seconds", convert.DefaultMaxSeconds, "truncate each file to this many seconds of audio")
	maxFiles   = flag.Int("max-files", convert.DefaultMaxFiles, "refuse batches larger than this")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] file.wav [file.wav ...]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Converts mono 16-bit PCM audio into comma-separated 0xHH listings.")
	fmt.Fprintln(os.Stderr, "Inputs are checked for existence up front; a missing file fails the whole batch.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		usage()
	}

	results, err := convert.Run(paths, convert.Options{
		OutputDir:  *outputDir,
		Verbose:    *verbose,
		MaxSeconds: *maxSeconds,
		MaxFiles:   *maxFiles,
		Out:        os.Stdout,
		Warn:       os.Stderr,
	})
	if err != nil {
		log.Fatalf("wavtable: %v", err)
	}

	fmt.Printf("Successfully processed %d file(s)\n", len(results))
}
