package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. It discards everything until SetVerbose or SetLogger is called.
var Log = zerolog.New(io.Discard)

var Verbose bool

func SetVerbose(verbose bool) {
	Verbose = verbose
	if verbose {
		SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.DebugLevel))
	} else {
		SetLogger(zerolog.New(io.Discard))
	}
}

func SetLogger(logger zerolog.Logger) {
	Log = logger
}

// Debug writes its arguments, space separated, as a debug message when Verbose is set.
func Debug(args ...interface{}) {
	if !Verbose || len(args) == 0 {
		return
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%v", arg))
	}
	Log.Debug().Msg(strings.Join(parts, " "))
}
