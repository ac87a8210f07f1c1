// SPDX-License-Identifier: EPL-2.0

// Command wavtable-tui is the interactive front-end to the hex table
// converter: pick .wav files from a directory, convert them with the
// default limits, and read the outcome in a dialog.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ik5/wavtable/convert"
	"github.com/ik5/wavtable/ui"
)

var dir = flag.String("d", ".", "directory to scan for .wav files")

func main() {
	log.SetFlags(0)
	flag.Parse()

	paths, err := ui.SelectWAVFiles(*dir)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Println("Cancelled by user")
			return
		}
		log.Fatalf("wavtable-tui: %v", err)
	}

	if len(paths) > convert.DefaultMaxFiles {
		showError("Too many files", fmt.Sprintf(
			"Selected %d files, the limit is %d.", len(paths), convert.DefaultMaxFiles))
		os.Exit(1)
	}

	progress := new(bytes.Buffer)
	results, err := convert.Run(paths, convert.Options{Out: progress, Warn: progress})
	if err != nil {
		showError("Conversion failed", err.Error())
		os.Exit(1)
	}

	body := fmt.Sprintf("Converted %d file(s).\n\n%s", len(results), progress.String())
	if err := ui.ShowInfo("Done", body); err != nil {
		log.Fatalf("wavtable-tui: %v", err)
	}
}

func showError(title, body string) {
	if err := ui.ShowError(title, body); err != nil {
		log.Printf("wavtable-tui: %v", err)
	}
}
