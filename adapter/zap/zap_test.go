// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dzap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/docstringer"
)

type entry struct {
	Level   zapcore.Level
	Message string
	Fields  map[string]interface{}
}

func Test(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSink(zap.New(core).Named("n"))
	s.Debug("d")
	s.Info("i")
	s.Warning("w")
	s.Error("e")
	s.Critical("c")

	var got []entry
	for _, e := range logs.All() {
		if e.LoggerName != "n" {
			t.Errorf("entry %q logged by %q", e.Message, e.LoggerName)
		}
		got = append(got, entry{e.Level, e.Message, e.ContextMap()})
	}
	empty := map[string]interface{}{}
	want := []entry{
		{zapcore.DebugLevel, "d", empty},
		{zapcore.InfoLevel, "i", empty},
		{zapcore.WarnLevel, "w", empty},
		{zapcore.ErrorLevel, "e", empty},
		{zapcore.ErrorLevel, "c", map[string]interface{}{"severity": "critical"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestNilLogger(t *testing.T) {
	NewSink(nil).Critical("dropped")
}

func TestFormatter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f, err := docstringer.NewLogger(NewSink(zap.New(core)), "debug")
	if err != nil {
		t.Fatal(err)
	}
	docstringer.Wrap(func(a, b int) int { return a * b }, docstringer.WithFormatter(f), docstringer.Name("mul"))(6, 7)
	if got := logs.FilterMessageSnippet("RETURN from mul").Len(); got != 1 {
		t.Errorf("got %d return entries, want 1", got)
	}
	if got := logs.FilterMessageSnippet("CALL to mul").Len(); got != 1 {
		t.Errorf("got %d call entries, want 1", got)
	}
}
