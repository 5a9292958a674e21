// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package severity

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Level
	}{
		{"debug", Debug},
		{"info", Info},
		{"warning", Warning},
		{"error", Error},
		{"critical", Critical},
	} {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.in, got, test.want)
		}
		if got.String() != test.in {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"verbose", "warn", "Debug", "", " info"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnknown) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknown", in, err)
		}
	}
}

func TestString(t *testing.T) {
	if got, want := Level(0).String(), "level(0)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := Level(9).String(), "level(9)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type recorder []string

func (r *recorder) Debug(msg string)    { *r = append(*r, "debug:"+msg) }
func (r *recorder) Info(msg string)     { *r = append(*r, "info:"+msg) }
func (r *recorder) Warning(msg string)  { *r = append(*r, "warning:"+msg) }
func (r *recorder) Error(msg string)    { *r = append(*r, "error:"+msg) }
func (r *recorder) Critical(msg string) { *r = append(*r, "critical:"+msg) }

func TestLog(t *testing.T) {
	var r recorder
	for l := Debug; l <= Critical; l++ {
		l.Log(&r, "m")
	}
	want := recorder{"debug:m", "info:m", "warning:m", "error:m", "critical:m"}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestLogInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Log with an invalid level did not panic")
		}
	}()
	Level(42).Log(new(recorder), "m")
}
