// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docstringer

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// Param is a single argument bound for one call.
type Param struct {
	Name  string
	Value any
}

// ParamList is an ordered snapshot of the arguments of one call.
type ParamList []Param

// Get returns the value bound to name.
func (ps ParamList) Get(name string) (any, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Map returns the parameters keyed by name.
func (ps ParamList) Map() map[string]any {
	m := make(map[string]any, len(ps))
	for _, p := range ps {
		m[p.Name] = p.Value
	}
	return m
}

func (ps ParamList) String() string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", p.Name, p.Value)
	}
	return b.String()
}

// Event describes one invocation of an instrumented function.
//
// The wrapper owns the Event until OnEnd returns. Formatters must not
// modify it; a formatter that retains it takes over that ownership.
type Event struct {
	Name   string    // name of the target function
	ID     uintptr   // identity of the target function
	Doc    string    // doc text attached when the function was wrapped
	Params ParamList // arguments bound for this call
	Return any       // result of the call, once Returned reports true

	returned bool
}

// Returned reports whether the call has completed and Return is set.
// It is always false during OnCall and always true during OnEnd.
func (e *Event) Returned() bool { return e.returned }

func (e *Event) String() string {
	if !e.returned {
		return fmt.Sprintf("%s(%v) -> ?", e.Name, e.Params)
	}
	return fmt.Sprintf("%s(%v) -> %v", e.Name, e.Params, e.Return)
}

// Info is the static description of an instrumented function.
// It is computed once, when the function is wrapped.
type Info struct {
	Name   string
	ID     uintptr
	Doc    string
	Params []string // declared parameter names, possibly fewer than the arity
}

// param returns the name used for the i'th argument.
func (fi Info) param(i int) string {
	if i < len(fi.Params) && fi.Params[i] != "" {
		return fi.Params[i]
	}
	return "arg" + strconv.Itoa(i)
}

func newInfo(v reflect.Value, o *options) Info {
	fi := Info{
		ID:     v.Pointer(),
		Doc:    strings.TrimSpace(o.doc),
		Params: append([]string(nil), o.params...),
	}
	if o.name != "" {
		fi.Name = o.name
	} else {
		fi.Name = funcName(fi.ID)
	}
	return fi
}

// funcName returns the unqualified name of the function at pc,
// or "" if the runtime cannot resolve one.
func funcName(pc uintptr) string {
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

func newEvent(fi Info, args []reflect.Value) *Event {
	ps := make(ParamList, len(args))
	for i, a := range args {
		ps[i] = Param{Name: fi.param(i), Value: a.Interface()}
	}
	return &Event{
		Name:   fi.Name,
		ID:     fi.ID,
		Doc:    fi.Doc,
		Params: ps,
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// failed reports whether out ends in a non-nil error.
func failed(t reflect.Type, out []reflect.Value) bool {
	n := t.NumOut()
	return n > 0 && t.Out(n-1) == errorType && !out[n-1].IsNil()
}

// setReturn records the results of a successful call.
// A trailing nil error is not part of the recorded value.
func (e *Event) setReturn(t reflect.Type, out []reflect.Value) {
	n := len(out)
	if n > 0 && t.Out(n-1) == errorType {
		n--
	}
	switch n {
	case 0:
		e.Return = nil
	case 1:
		e.Return = out[0].Interface()
	default:
		rs := make([]any, n)
		for i := range rs {
			rs[i] = out[i].Interface()
		}
		e.Return = rs
	}
	e.returned = true
}
