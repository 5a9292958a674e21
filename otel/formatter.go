// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel reports instrumented calls as OpenTelemetry spans.
//
// Each call becomes a root span that starts in OnCall and ends in OnEnd.
// Spans are not linked to any surrounding trace.
package otel

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/docstringer"
)

// Attribute keys set on every span.
const (
	IDKey          = attribute.Key("docstringer.id")
	DocKey         = attribute.Key("docstringer.doc")
	ReturnKey      = attribute.Key("docstringer.return")
	EndedKey       = attribute.Key("docstringer.ended")
	ParamKeyPrefix = "docstringer.param."
)

// Formatter is a docstringer.Formatter that emits spans.
// It is safe for concurrent use.
type Formatter struct {
	tracer trace.Tracer

	mu    sync.Mutex
	spans map[*docstringer.Event]trace.Span // open spans, by call
}

var _ docstringer.Formatter = (*Formatter)(nil)

// NewFormatter returns a Formatter that starts spans with t.
func NewFormatter(t trace.Tracer) *Formatter {
	return &Formatter{
		tracer: t,
		spans:  map[*docstringer.Event]trace.Span{},
	}
}

func (f *Formatter) OnCall(e *docstringer.Event) {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("%#x", e.ID)
	}
	attrs := make([]attribute.KeyValue, 0, len(e.Params)+2)
	attrs = append(attrs,
		IDKey.String(fmt.Sprintf("%#x", e.ID)),
		DocKey.String(e.Doc))
	for _, p := range e.Params {
		attrs = append(attrs, attribute.String(ParamKeyPrefix+p.Name, fmt.Sprint(p.Value)))
	}
	_, span := f.tracer.Start(context.Background(), name, trace.WithAttributes(attrs...))
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spans[e] = span
}

func (f *Formatter) OnEnd(e *docstringer.Event) {
	f.mu.Lock()
	span, ok := f.spans[e]
	delete(f.spans, e)
	f.mu.Unlock()
	if !ok {
		return
	}
	span.SetAttributes(ReturnKey.String(fmt.Sprint(e.Return)), EndedKey.Bool(true))
	span.End()
}

// Pending returns the number of calls that have not ended, either because
// they are still running or because they failed.
func (f *Formatter) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.spans)
}

// Close ends all pending spans, marking them with EndedKey set to false.
// Failed calls never reach OnEnd, so their spans stay open until Close.
func (f *Formatter) Close() {
	f.mu.Lock()
	spans := f.spans
	f.spans = map[*docstringer.Event]trace.Span{}
	f.mu.Unlock()
	for _, span := range spans {
		span.SetAttributes(EndedKey.Bool(false))
		span.End()
	}
}
