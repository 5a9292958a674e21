// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dzerolog provides a docstringer.Sink backed by a zerolog.Logger.
package dzerolog

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/docstringer"
	"golang.org/x/exp/docstringer/adapter/internal"
)

type sink struct {
	logger zerolog.Logger
}

var _ docstringer.Sink = sink{}

// NewSink returns a Sink writing to l.
func NewSink(l zerolog.Logger) docstringer.Sink {
	return sink{logger: l}
}

func (s sink) Debug(msg string)   { s.logger.Debug().Msg(msg) }
func (s sink) Info(msg string)    { s.logger.Info().Msg(msg) }
func (s sink) Warning(msg string) { s.logger.Warn().Msg(msg) }
func (s sink) Error(msg string)   { s.logger.Error().Msg(msg) }

func (s sink) Critical(msg string) {
	s.logger.Error().Str(internal.SeverityKey, internal.Critical).Msg(msg)
}
