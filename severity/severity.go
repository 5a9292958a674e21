// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package severity defines the named log levels understood by the
// logger-backed formatter and the sink contract they dispatch to.
package severity

import (
	"strconv"

	"golang.org/x/xerrors"
)

// A Level is a named logging verbosity tier.
// Higher levels are more severe.
type Level int

const (
	Debug Level = iota + 1
	Info
	Warning
	Error
	Critical
)

// ErrUnknown is wrapped by the error Parse returns for an unrecognized name.
var ErrUnknown = xerrors.New("unknown severity level")

var names = [...]string{
	Debug:    "debug",
	Info:     "info",
	Warning:  "warning",
	Error:    "error",
	Critical: "critical",
}

// String returns the lowercase name of the level, or "level(N)" for a
// value outside the named set.
func (l Level) String() string {
	if l.Valid() {
		return names[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Valid reports whether l is one of the named levels.
func (l Level) Valid() bool {
	return l >= Debug && l <= Critical
}

// Parse returns the level with the given name.
// Only the exact lowercase names debug, info, warning, error and critical
// are accepted.
func Parse(name string) (Level, error) {
	for l := Debug; l <= Critical; l++ {
		if names[l] == name {
			return l, nil
		}
	}
	return 0, xerrors.Errorf("%q: %w", name, ErrUnknown)
}

// Sink is a logging destination exposing one operation per named level.
// Each operation receives a single preformatted message.
type Sink interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
	Critical(msg string)
}

// Log sends msg to the sink operation matching l.
// It panics if l is not a named level.
func (l Level) Log(s Sink, msg string) {
	switch l {
	case Debug:
		s.Debug(msg)
	case Info:
		s.Info(msg)
	case Warning:
		s.Warning(msg)
	case Error:
		s.Error(msg)
	case Critical:
		s.Critical(msg)
	default:
		panic("severity: Log called with invalid " + l.String())
	}
}
