// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docstringer

import (
	"fmt"

	"golang.org/x/exp/docstringer/severity"
	"golang.org/x/xerrors"
)

// ErrInvalidConfiguration is returned when a formatter is constructed
// with settings it cannot use.
var ErrInvalidConfiguration = xerrors.New("invalid configuration")

// Sink is the logging destination of the logger-backed formatter.
// Adapters for common logging libraries live under adapter/.
type Sink = severity.Sink

type logger struct {
	sink  Sink
	level severity.Level
}

// NewLogger returns a Formatter that writes a summary line for each call
// and each return to sink, at the level with the given name.
//
// The level must be one of debug, info, warning, error or critical.
// Any other name, or a nil sink, fails with ErrInvalidConfiguration.
func NewLogger(sink Sink, level string) (Formatter, error) {
	if sink == nil {
		return nil, xerrors.Errorf("docstringer: nil sink: %w", ErrInvalidConfiguration)
	}
	l, err := severity.Parse(level)
	if err != nil {
		return nil, xerrors.Errorf("docstringer: %v: %w", err, ErrInvalidConfiguration)
	}
	return &logger{sink: sink, level: l}, nil
}

func (l *logger) OnCall(e *Event) {
	l.level.Log(l.sink, fmt.Sprintf("CALL to %s (id=%#x) with %v\n%s", e.Name, e.ID, e.Params, e.Doc))
}

func (l *logger) OnEnd(e *Event) {
	l.level.Log(l.sink, fmt.Sprintf("RETURN from %s (id=%#x) with result = %v", e.Name, e.ID, e.Return))
}
