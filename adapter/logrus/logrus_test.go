// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlogrus

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/exp/docstringer"
)

type entry struct {
	Level   logrus.Level
	Message string
	Data    logrus.Fields
}

func Test(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s := NewSink(log.WithField("component", "dice"))
	s.Debug("d")
	s.Info("i")
	s.Warning("w")
	s.Error("e")
	s.Critical("c")

	var got []entry
	for _, e := range hook.AllEntries() {
		got = append(got, entry{e.Level, e.Message, e.Data})
	}
	base := logrus.Fields{"component": "dice"}
	want := []entry{
		{logrus.DebugLevel, "d", base},
		{logrus.InfoLevel, "i", base},
		{logrus.WarnLevel, "w", base},
		{logrus.ErrorLevel, "e", base},
		{logrus.ErrorLevel, "c", logrus.Fields{"component": "dice", "severity": "critical"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestFormatter(t *testing.T) {
	log, hook := test.NewNullLogger()
	f, err := docstringer.NewLogger(NewSink(log), "warning")
	if err != nil {
		t.Fatal(err)
	}
	double := docstringer.Wrap(func(x int) int { return 2 * x }, docstringer.WithFormatter(f), docstringer.Name("double"))
	double(21)
	entries := hook.AllEntries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Level != logrus.WarnLevel {
			t.Errorf("entry %q at level %v, want warning", e.Message, e.Level)
		}
	}
	if got := entries[1].Message; !strings.HasSuffix(got, "result = 42") {
		t.Errorf("return entry %q does not end with the result", got)
	}
}
