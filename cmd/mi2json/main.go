// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program mi2json converts GDB machine interface (MI) output to JSON.
//
// Usage:
//
//	gdb --interpreter=mi3 ... | mi2json
//
// Each line of MI output read from stdin is written to stdout as a single
// JSON object. Embedded values reported in results named "value" are parsed
// and written as value trees. The first line that cannot be converted stops
// the program with a non-zero exit status.
//
// Set MI2JSON_LOG_LEVEL to "debug" or a positive verbosity to log each
// converted record to stderr.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/creachadair/mivalue/internal/logger"
)

func main() {
	log := logger.New("mi2json")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Run(ctx, os.Exit, os.Stdin, os.Stdout, log.Logger, os.Args[1:]...)
	cancel()
	if err != nil {
		log.Error(err, "conversion failed")
		log.Flush()
		os.Exit(1)
	}
	log.Flush()
}
