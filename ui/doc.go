// SPDX-License-Identifier: EPL-2.0

// Package ui holds the interactive terminal front-end: a multi-select
// picker over the .wav files in a directory, plus modal info and error
// dialogs shown after a batch finishes.
package ui
