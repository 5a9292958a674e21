// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docstringtest provides formatters for tests of instrumented code.
//
// A Recorder keeps every phase it sees so a test can assert on the exact
// sequence of calls and returns. NewLogger routes both phases to a
// testing.TB so they show up in verbose test output.
package docstringtest

import (
	"testing"

	"golang.org/x/exp/docstringer"
)

// Phase names one half of the call protocol.
type Phase string

const (
	Call Phase = "call"
	End  Phase = "end"
)

// Record is one phase observed by a Recorder.
type Record struct {
	Phase Phase
	Event *docstringer.Event
	// Returned is the value of Event.Returned at the time of the phase.
	Returned bool
}

// Recorder is a Formatter that keeps everything it receives.
// The zero value is ready to use.
type Recorder struct {
	Records []Record
}

var _ docstringer.Formatter = (*Recorder)(nil)

func (r *Recorder) OnCall(e *docstringer.Event) { r.add(Call, e) }
func (r *Recorder) OnEnd(e *docstringer.Event)  { r.add(End, e) }

func (r *Recorder) add(p Phase, e *docstringer.Event) {
	r.Records = append(r.Records, Record{Phase: p, Event: e, Returned: e.Returned()})
}

// Phases returns the recorded sequence as "call name" and "end name"
// strings.
func (r *Recorder) Phases() []string {
	ps := make([]string, len(r.Records))
	for i, rec := range r.Records {
		ps[i] = string(rec.Phase) + " " + rec.Event.Name
	}
	return ps
}

// Count returns how many times phase p was recorded.
func (r *Recorder) Count(p Phase) int {
	n := 0
	for _, rec := range r.Records {
		if rec.Phase == p {
			n++
		}
	}
	return n
}

// Reset discards the recorded phases.
func (r *Recorder) Reset() { r.Records = nil }

type testLogger struct {
	tb testing.TB
}

// NewLogger returns a Formatter that logs both phases to tb.
func NewLogger(tb testing.TB) docstringer.Formatter {
	return testLogger{tb: tb}
}

func (l testLogger) OnCall(e *docstringer.Event) {
	l.tb.Helper()
	l.tb.Logf("call %v", e)
}

func (l testLogger) OnEnd(e *docstringer.Event) {
	l.tb.Helper()
	l.tb.Logf("end %v", e)
}
