// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docstringer traces function calls at runtime.
//
// Wrapping a function with Instrument or Wrap yields a drop-in replacement
// with the same signature. Every call through the replacement builds an
// Event holding the function's name, identity, doc text and bound
// parameters, and hands it to a Formatter in two phases: OnCall before the
// original runs and OnEnd after it returns successfully, by which time the
// Event carries the return value.
//
// A call that fails, either by returning a non-nil trailing error or by
// panicking, propagates unchanged and never reaches OnEnd. Formatters that
// pair the two phases must tolerate a call without a matching end.
//
// Everything happens synchronously on the caller's goroutine. The wrapper
// keeps no state between calls; only the chosen Formatter may.
package docstringer
