// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docstringer

import (
	"fmt"
	"io"
	"os"
)

type printer struct {
	w io.Writer
}

// NewPrint returns a Formatter that writes the name, identity, parameters
// and doc text of each call to w, and the name, identity and result of
// each return. A nil w means os.Stdout.
func NewPrint(w io.Writer) Formatter {
	if w == nil {
		w = os.Stdout
	}
	return printer{w: w}
}

// NewDefault returns the formatter used when none is configured.
// It is the same as NewPrint.
func NewDefault(w io.Writer) Formatter {
	return NewPrint(w)
}

func (p printer) OnCall(e *Event) {
	fmt.Fprintf(p.w, "CALL to %s (id=%#x)\nwith %v\n%s\n\n", e.Name, e.ID, e.Params, e.Doc)
}

func (p printer) OnEnd(e *Event) {
	fmt.Fprintf(p.w, "RETURN from %s (id=%#x)\nresult = %v\n\n", e.Name, e.ID, e.Return)
}

type simplePrinter struct {
	w io.Writer
}

// NewPrintSimple returns a Formatter that writes only the name, identity
// and doc text of each call to w. Returns produce no output.
// A nil w means os.Stdout.
func NewPrintSimple(w io.Writer) Formatter {
	if w == nil {
		w = os.Stdout
	}
	return simplePrinter{w: w}
}

func (p simplePrinter) OnCall(e *Event) {
	fmt.Fprintf(p.w, "CALL to %s (id=%#x)\n%s\n\n", e.Name, e.ID, e.Doc)
}

func (simplePrinter) OnEnd(*Event) {}
