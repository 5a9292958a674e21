// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dslog provides a docstringer.Sink backed by a log/slog Logger.
package dslog

import (
	"context"
	"log/slog"

	"golang.org/x/exp/docstringer"
	"golang.org/x/exp/docstringer/adapter/internal"
)

type sink struct {
	logger *slog.Logger
}

var _ docstringer.Sink = sink{}

// NewSink returns a Sink writing to l. A nil l means slog.Default().
func NewSink(l *slog.Logger) docstringer.Sink {
	if l == nil {
		l = slog.Default()
	}
	return sink{logger: l}
}

func (s sink) Debug(msg string)   { s.logger.Debug(msg) }
func (s sink) Info(msg string)    { s.logger.Info(msg) }
func (s sink) Warning(msg string) { s.logger.Warn(msg) }
func (s sink) Error(msg string)   { s.logger.Error(msg) }

func (s sink) Critical(msg string) {
	s.logger.LogAttrs(context.Background(), slog.LevelError, msg,
		slog.String(internal.SeverityKey, internal.Critical))
}
