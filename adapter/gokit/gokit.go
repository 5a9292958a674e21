// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dgokit provides a docstringer.Sink backed by a go-kit logger.
package dgokit

import (
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/exp/docstringer"
	"golang.org/x/exp/docstringer/adapter/internal"
)

type sink struct {
	logger log.Logger
}

var _ docstringer.Sink = sink{}

// NewSink returns a Sink writing to l. Each message is logged under the
// "msg" key with the matching level.Value attached. Errors returned by l
// are dropped; wrap l with log.LoggerFunc to observe them.
func NewSink(l log.Logger) docstringer.Sink {
	return sink{logger: l}
}

func (s sink) Debug(msg string)   { _ = level.Debug(s.logger).Log("msg", msg) }
func (s sink) Info(msg string)    { _ = level.Info(s.logger).Log("msg", msg) }
func (s sink) Warning(msg string) { _ = level.Warn(s.logger).Log("msg", msg) }
func (s sink) Error(msg string)   { _ = level.Error(s.logger).Log("msg", msg) }

func (s sink) Critical(msg string) {
	_ = level.Error(s.logger).Log("msg", msg, internal.SeverityKey, internal.Critical)
}
