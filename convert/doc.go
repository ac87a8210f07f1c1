// SPDX-License-Identifier: EPL-2.0

// Package convert orchestrates batch conversion of audio files into
// firmware hex tables.
//
// A batch is all-or-nothing at the gate: the file-count limit and the
// existence of every input are verified before any conversion begins,
// and the first per-file failure stops the run. There is no retry and
// no partial-success mode beyond the files already written when a
// later file fails.
//
// The orchestrator is front-end agnostic. Progress and warnings go to
// injected io.Writers, so the CLI streams them while the interactive
// front end collects them for a summary dialog:
//
//	results, err := convert.Run(paths, convert.Options{
//	    Verbose: true,
//	    Out:     os.Stdout,
//	    Warn:    os.Stderr,
//	})
package convert
