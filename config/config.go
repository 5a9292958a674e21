// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config builds instrumentation options from the environment or
// from a YAML document, so tracing can be switched and redirected without
// touching call sites.
//
// Recognized environment variables:
//
//	DOCSTRINGER_ACTIVE     true or false (default true)
//	DOCSTRINGER_FORMATTER  default, print, simple, logger or discard (default "default")
//	DOCSTRINGER_LEVEL      debug, info, warning, error or critical (default "info")
package config

import (
	"io"

	"github.com/caarlos0/env/v11"
	"golang.org/x/exp/docstringer"
	"golang.org/x/exp/docstringer/severity"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DOCSTRINGER_"

// Formatter kinds.
const (
	KindDefault = "default"
	KindPrint   = "print"
	KindSimple  = "simple"
	KindLogger  = "logger"
	KindDiscard = "discard"
)

// Config selects whether and how instrumented functions report calls.
type Config struct {
	Active    bool   `env:"ACTIVE" envDefault:"true" yaml:"active"`
	Formatter string `env:"FORMATTER" envDefault:"default" yaml:"formatter"`
	Level     string `env:"LEVEL" envDefault:"info" yaml:"level"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{Active: true, Formatter: KindDefault, Level: severity.Info.String()}
}

// FromEnv reads the configuration from DOCSTRINGER_* environment variables.
func FromEnv() (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, xerrors.Errorf("config: parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads the configuration from a YAML document. Keys that are absent
// keep their default values; unknown keys are an error.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, xerrors.Errorf("config: decode yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports an error wrapping docstringer.ErrInvalidConfiguration
// if the formatter kind or level name is not recognized.
func (c Config) Validate() error {
	switch c.Formatter {
	case KindDefault, KindPrint, KindSimple, KindLogger, KindDiscard:
	default:
		return xerrors.Errorf("config: unknown formatter %q: %w", c.Formatter, docstringer.ErrInvalidConfiguration)
	}
	if _, err := severity.Parse(c.Level); err != nil {
		return xerrors.Errorf("config: %v: %w", err, docstringer.ErrInvalidConfiguration)
	}
	return nil
}

// Options returns instrumentation options for c. Printing formatters write
// to w (nil means os.Stdout); the logger formatter writes to sink, which
// must then be non-nil. Each call builds a new formatter.
func (c Config) Options(w io.Writer, sink docstringer.Sink) ([]docstringer.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var f docstringer.Formatter
	switch c.Formatter {
	case KindDefault:
		f = docstringer.NewDefault(w)
	case KindPrint:
		f = docstringer.NewPrint(w)
	case KindSimple:
		f = docstringer.NewPrintSimple(w)
	case KindDiscard:
		f = docstringer.Discard
	case KindLogger:
		var err error
		if f, err = docstringer.NewLogger(sink, c.Level); err != nil {
			return nil, xerrors.Errorf("config: %w", err)
		}
	}
	return []docstringer.Option{docstringer.Active(c.Active), docstringer.WithFormatter(f)}, nil
}
