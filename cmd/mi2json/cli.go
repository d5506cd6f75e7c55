// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"context"
	"io"

	"github.com/alecthomas/kong"
	"github.com/go-logr/logr"
)

const (
	name        = "mi2json"
	description = "Convert GDB/MI records read from stdin to JSON, one object per line."
)

// CLI is the command-line interface of mi2json. It has no flags or
// arguments other than the built-in help.
type CLI struct{}

// Run parses args and converts the records of r to w. The exit function is
// called if the arguments request help.
func Run(
	ctx context.Context,
	exit func(code int),
	r io.Reader,
	w io.Writer,
	log logr.Logger,
	args ...string,
) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Exit(exit),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}
	return Convert(ctx, r, w, log)
}
