// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dzap provides a docstringer.Sink backed by a zap.Logger.
package dzap

import (
	"go.uber.org/zap"
	"golang.org/x/exp/docstringer"
	"golang.org/x/exp/docstringer/adapter/internal"
)

type sink struct {
	logger *zap.Logger
}

var _ docstringer.Sink = (*sink)(nil)

// NewSink returns a Sink writing to l. A nil l is replaced by zap.NewNop.
func NewSink(l *zap.Logger) docstringer.Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &sink{logger: l}
}

func (s *sink) Debug(msg string)   { s.logger.Debug(msg) }
func (s *sink) Info(msg string)    { s.logger.Info(msg) }
func (s *sink) Warning(msg string) { s.logger.Warn(msg) }
func (s *sink) Error(msg string)   { s.logger.Error(msg) }

// Critical logs at error level, never DPanic or above.
func (s *sink) Critical(msg string) {
	s.logger.Error(msg, zap.String(internal.SeverityKey, internal.Critical))
}
