package main

import (
	"errors"
	"path/filepath"

	"github.com/boynton/ana/ir"
	"github.com/boynton/ana/syntax"
	"github.com/boynton/ana/util"
)

// formatError annotates errors that carry a source range with the offending text.
func formatError(path, src string, err error) string {
	var rng syntax.Range
	var msg string
	var se *syntax.Error
	var ie *ir.Error
	switch {
	case errors.As(err, &se):
		rng, msg = se.Range, se.Msg
	case errors.As(err, &ie):
		rng, msg = ie.Range, string(ie.Code)+": "+ie.Msg
	default:
		return filepath.Base(path) + ": " + err.Error()
	}
	width := 1
	if rng.StartPoint.Row == rng.EndPoint.Row && rng.Len() > 0 {
		width = rng.EndPoint.Column - rng.StartPoint.Column
	}
	return util.Annotate(path, src, "*** ", msg, rng.StartPoint.Row, rng.StartPoint.Column, width, util.RED, 2)
}
