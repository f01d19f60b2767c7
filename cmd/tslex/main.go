package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// log is the CLI-wide diagnostic logger (SPEC_FULL.md §B.1): the core lexer
// packages stay silent, so structured logging only lives at this edge.
var log = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
