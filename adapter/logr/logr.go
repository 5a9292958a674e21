// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlogr provides a docstringer.Sink backed by a logr.Logger.
//
// logr only distinguishes verbosity and errors, so debug messages are
// logged at V(1), warnings as info with severity=warning, and critical
// messages as errors with severity=critical.
package dlogr

import (
	"github.com/go-logr/logr"
	"golang.org/x/exp/docstringer"
	"golang.org/x/exp/docstringer/adapter/internal"
)

// DebugVerbosity is the V level used for debug messages.
const DebugVerbosity = 1

type sink struct {
	logger logr.Logger
}

var _ docstringer.Sink = sink{}

// NewSink returns a Sink writing to l.
func NewSink(l logr.Logger) docstringer.Sink {
	return sink{logger: l}
}

func (s sink) Debug(msg string) { s.logger.V(DebugVerbosity).Info(msg) }
func (s sink) Info(msg string)  { s.logger.Info(msg) }

func (s sink) Warning(msg string) {
	s.logger.Info(msg, internal.SeverityKey, internal.Warning)
}

func (s sink) Error(msg string) { s.logger.Error(nil, msg) }

func (s sink) Critical(msg string) {
	s.logger.Error(nil, msg, internal.SeverityKey, internal.Critical)
}
