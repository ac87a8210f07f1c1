// SPDX-License-Identifier: EPL-2.0

// Command splitsamples breaks a monolithic sample-bank header into one
// header per sample array plus a master include file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavtable/split"
)

var (
	outputDir = flag.String("o", "samples", "output directory for generated headers")
	ext       = flag.String("ext", "h", "extension for generated files, without the dot")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] all_samples.h\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Splits every sampleN array in the input into its own header and")
	fmt.Fprintln(os.Stderr, "writes a samples index referencing them all.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	names, err := split.Run(flag.Arg(0), split.Options{
		OutputDir: *outputDir,
		Ext:       *ext,
		Log:       os.Stdout,
	})
	if err != nil {
		log.Fatalf("splitsamples: %v", err)
	}

	fmt.Printf("Split %d sample(s) into %s\n", len(names), *outputDir)
}
