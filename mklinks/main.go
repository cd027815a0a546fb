// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mklinks turns the URLs and email addresses in text into HTML links.
//
// Usage:
//
//	mklinks [flags] [file...]
//
// Mklinks reads the named files, or else standard input, and prints the
// linkified text to standard output. With -w it rewrites the files in place.
//
// The flags are:
//
//	--board-url url
//		make links below url local links
//	--class name
//		anchor class (default "postlink")
//	--deny-scheme scheme
//		never link URLs with this scheme; may be repeated
//	--lazy-scheme scheme
//		scheme added to www. links (default "http://")
//	--punycode
//		write internationalized host names in link targets as punycode
//	--markdown
//		treat input as Markdown and print HTML
//	--unlink
//		undo linkification instead
//	-w
//		write results to files instead of standard output
//	--config file
//		read settings from file (default $HOME/.mklinks.yaml or ./.mklinks.yaml)
//	--log-level level
//		debug, info, warn, or error (default "warn")
//
// Settings may also come from a config file, using the flag names
// with dashes replaced by underscores (board_url, deny_scheme, ...),
// or from environment variables such as MKLINKS_BOARD_URL.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := newLogger(os.Stderr, defaultLevel)
	cmd := newRootCmd(&log)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			log.Error().Err(err).Msg("mklinks")
		}
		os.Exit(1)
	}
}

// newLogger returns a console logger writing to w at the named level.
func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(parseLevel(level)).
		With().Str("cmd", "mklinks").Logger()
}

// parseLevel returns the zerolog level named by s, or WarnLevel.
func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}
