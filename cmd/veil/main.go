// Package main provides the entry point for the Veil demo application, a
// document-search TUI showcasing the toolkit's widgets and overlays.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
