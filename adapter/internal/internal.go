// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds what the sink adapters share.
package internal

// None of the adapted libraries has a critical level. Adapters log
// critical messages at their error level with this key/value attached.
const (
	SeverityKey = "severity"
	Critical    = "critical"
	Warning     = "warning"
)
