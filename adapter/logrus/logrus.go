// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlogrus provides a docstringer.Sink backed by logrus.
//
//	f, err := docstringer.NewLogger(dlogrus.NewSink(logrus.StandardLogger()), "info")
package dlogrus

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/docstringer"
	"golang.org/x/exp/docstringer/adapter/internal"
)

type sink struct {
	logger logrus.FieldLogger
}

var _ docstringer.Sink = (*sink)(nil)

// NewSink returns a Sink writing to l, which may be a *logrus.Logger or
// a *logrus.Entry carrying fields.
func NewSink(l logrus.FieldLogger) docstringer.Sink {
	return &sink{logger: l}
}

func (s *sink) Debug(msg string)   { s.logger.Debug(msg) }
func (s *sink) Info(msg string)    { s.logger.Info(msg) }
func (s *sink) Warning(msg string) { s.logger.Warn(msg) }
func (s *sink) Error(msg string)   { s.logger.Error(msg) }

// Critical logs at error level; fatal and panic would stop the program.
func (s *sink) Critical(msg string) {
	s.logger.WithField(internal.SeverityKey, internal.Critical).Error(msg)
}
