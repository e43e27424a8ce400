// Package main provides the Ember terminal journal application: a
// chat-free, keyboard-driven daily journal with mood tags, photo
// attachments, a date-grouped history view, and JSON export.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
