// Package debug implements a process-wide debug log, disabled by default.
package debug

import (
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"
)

var (
	enabled int32 = 0
	logger        = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
)

// Toggle turns on/off debug mode
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
	}
	atomic.StoreInt32(&enabled, val)
}

// Enabled reports whether debug mode is on.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

// SetOutput changes the destination of debug logs, which is stderr by
// default.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Do executes a function if debug is enabled, usually for side effects.
func Do(f func()) {
	if !Enabled() {
		return
	}
	f()
}

// Format a log line and writes it if debug is enabled
func Format(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	logger.Printf(format, args...)
}

// Timer returns a function logging the time elapsed since the call to Timer,
// meant to be deferred.
func Timer(name string) func() {
	if !Enabled() {
		return func() {}
	}
	start := time.Now()
	return func() { Format("%s: %s", name, time.Since(start)) }
}
