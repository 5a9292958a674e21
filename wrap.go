// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docstringer

import (
	"fmt"
	"os"
	"reflect"
)

// An Option configures a single instrumentation.
type Option func(*options)

type options struct {
	active    bool
	formatter Formatter
	name      string
	doc       string
	params    []string
}

// Active controls whether the wrapper reports anything. An inactive
// wrapper is the original function: no events are built and the formatter
// is never called. The default is true.
func Active(active bool) Option {
	return func(o *options) { o.active = active }
}

// WithFormatter sets the formatter that receives the events.
// Without it, each instrumentation gets its own NewDefault(os.Stdout).
func WithFormatter(f Formatter) Option {
	return func(o *options) { o.formatter = f }
}

// Doc attaches doc text to the function. It is captured once and carried
// by every event.
func Doc(text string) Option {
	return func(o *options) { o.doc = text }
}

// ParamNames declares the names of the function's parameters, in order.
// Arguments past the declared names are reported as arg0, arg1 and so on
// by position. The final argument of a variadic function is bound as a
// single slice.
func ParamNames(names ...string) Option {
	return func(o *options) { o.params = names }
}

// Name overrides the name the runtime reports for the function.
// It is mostly useful for function literals.
func Name(name string) Option {
	return func(o *options) { o.name = name }
}

// Func is an instrumented function.
type Func[F any] struct {
	// Call has the same signature as the original and is used in its place.
	Call F

	target F
	info   Info
}

// Info describes the original function, not the wrapper.
func (f *Func[F]) Info() Info {
	fi := f.info
	fi.Params = append([]string(nil), fi.Params...)
	return fi
}

// Target returns the original, uninstrumented function.
func (f *Func[F]) Target() F { return f.target }

// Instrument wraps fn, which must be a non-nil function.
//
// Each call through the returned Func's Call field builds a fresh Event,
// passes it to OnCall, runs fn with the original arguments and, if fn
// succeeded, stores its results in the Event and passes it to OnEnd.
// Results are returned to the caller unchanged. A non-nil trailing error
// or a panic counts as failure: OnEnd is skipped and the failure reaches
// the caller untouched.
func Instrument[F any](fn F, opts ...Option) *Func[F] {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("docstringer: cannot instrument %T, not a function", fn))
	}
	if v.IsNil() {
		panic("docstringer: cannot instrument a nil function")
	}
	o := &options{active: true}
	for _, opt := range opts {
		opt(o)
	}
	f := &Func[F]{Call: fn, target: fn, info: newInfo(v, o)}
	if !o.active {
		return f
	}
	fm := o.formatter
	if fm == nil {
		fm = NewDefault(os.Stdout)
	}
	t := v.Type()
	call := v.Call
	if t.IsVariadic() {
		call = v.CallSlice
	}
	info := f.info
	f.Call = reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		ev := newEvent(info, args)
		fm.OnCall(ev)
		out := call(args)
		if failed(t, out) {
			return out
		}
		ev.setReturn(t, out)
		fm.OnEnd(ev)
		return out
	}).Interface().(F)
	return f
}

// Wrap is shorthand for Instrument(fn, opts...).Call.
func Wrap[F any](fn F, opts ...Option) F {
	return Instrument(fn, opts...).Call
}
