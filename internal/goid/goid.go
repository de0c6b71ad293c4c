// Package goid resolves the id of the calling goroutine.
//
// The runtime does not expose goroutine ids on purpose. The one stable way
// to learn the current id is to parse the "goroutine N [running]:" header
// that runtime.Stack prints for the calling goroutine. That costs a stack
// dump per call, so callers reserve it for diagnostic modes.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

var header = []byte("goroutine ")

// Get returns the id of the calling goroutine.
func Get() int64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]

	buf = bytes.TrimPrefix(buf, header)
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}

	id, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		panic("goid: unparseable goroutine header: " + err.Error())
	}
	return id
}
