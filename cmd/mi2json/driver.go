// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/mds/mstr"
	"github.com/creachadair/mivalue"
	"github.com/creachadair/mivalue/mi"
	"github.com/creachadair/mivalue/render"
	"github.com/go-logr/logr"
)

// maxQuoted bounds the length of an input line quoted in an error.
const maxQuoted = 200

// Convert reads MI records from r, one per line, and writes each to w as a
// line of JSON. Blank lines are skipped. Convert stops at the first line it
// cannot convert, after writing the output of all the lines before it.
// The context is checked between lines.
func Convert(ctx context.Context, r io.Reader, w io.Writer, log logr.Logger) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	var nrec int
	for lnum := 1; ; lnum++ {
		if err := ctx.Err(); err != nil {
			return flushErr(out, err)
		}
		line, rerr := in.ReadString('\n')
		if text := strings.TrimRight(line, "\r\n"); strings.TrimSpace(text) != "" {
			js, err := convertLine(text)
			if err != nil {
				return flushErr(out, fmt.Errorf("line %d: %w", lnum, err))
			}
			if _, err := out.WriteString(js + "\n"); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			nrec++
			log.V(1).Info("converted record", "line", lnum, "bytes", len(js))
		}
		if rerr == io.EOF {
			break
		} else if rerr != nil {
			return flushErr(out, fmt.Errorf("read input: %w", rerr))
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.V(1).Info("end of input", "records", nrec)
	return nil
}

func convertLine(text string) (string, error) {
	rec, err := mi.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing message %q: %w", mstr.Trunc(text, maxQuoted), err)
	}
	js, err := render.Record(rec, mivalue.Parse)
	if err != nil {
		return "", fmt.Errorf("parsing value in message %q: %w", mstr.Trunc(text, maxQuoted), err)
	}
	return js, nil
}

// flushErr writes pending output and returns err. A write failure is
// reported in preference to err.
func flushErr(out *bufio.Writer, err error) error {
	if ferr := out.Flush(); ferr != nil {
		return fmt.Errorf("write output: %w", ferr)
	}
	return err
}
