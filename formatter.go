// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docstringer

// Formatter is the sink for the events of instrumented calls.
//
// Both methods are called synchronously on the caller's goroutine and
// should return quickly so as not to hold up user code.
type Formatter interface {
	// OnCall is called once per invocation, before the target runs.
	OnCall(*Event)
	// OnEnd is called once per successful invocation, after Return is set.
	// It is not called for a failed invocation.
	OnEnd(*Event)
}

// Discard is a Formatter that ignores both phases.
var Discard Formatter = discard{}

type discard struct{}

func (discard) OnCall(*Event) {}
func (discard) OnEnd(*Event)  {}

type multi []Formatter

// NewMulti returns a Formatter that forwards each phase to all non-nil
// formatters in order.
func NewMulti(fs ...Formatter) Formatter {
	m := make(multi, 0, len(fs))
	for _, f := range fs {
		if f != nil {
			m = append(m, f)
		}
	}
	return m
}

func (m multi) OnCall(e *Event) {
	for _, f := range m {
		f.OnCall(e)
	}
}

func (m multi) OnEnd(e *Event) {
	for _, f := range m {
		f.OnEnd(e)
	}
}

type list struct {
	events *[]*Event
}

// NewList returns a Formatter that appends every called event to *events.
//
// The slice is shared with the caller, who inspects it to see the recorded
// history. Events are appended at call time, so an entry for a call that
// failed stays with Returned false. Appends are not synchronized; callers
// instrumenting concurrently must serialize the calls themselves.
func NewList(events *[]*Event) Formatter {
	if events == nil {
		panic("docstringer: NewList called with a nil slice pointer")
	}
	return list{events: events}
}

func (l list) OnCall(e *Event) { *l.events = append(*l.events, e) }
func (l list) OnEnd(*Event)    {}
