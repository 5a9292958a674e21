// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docstringer_test

import (
	"fmt"
	"os"

	"golang.org/x/exp/docstringer"
)

func greet(name string) string { return "hello, " + name }

func ExampleNewList() {
	var events []*docstringer.Event
	g := docstringer.Wrap(greet,
		docstringer.WithFormatter(docstringer.NewList(&events)),
		docstringer.ParamNames("name"))
	g("gopher")
	g("world")
	for _, e := range events {
		fmt.Println(e)
	}
	// Output:
	// greet(name=gopher) -> hello, gopher
	// greet(name=world) -> hello, world
}

func ExampleActive() {
	quiet := docstringer.Wrap(greet,
		docstringer.Active(false),
		docstringer.WithFormatter(docstringer.NewPrintSimple(os.Stdout)))
	fmt.Println(quiet("gopher"))
	// Output:
	// hello, gopher
}
