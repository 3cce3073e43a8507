// Package core carries process-level plumbing shared by every backend
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
	crashOutput  io.Writer = os.Stderr
	crashExit              = os.Exit
)

// SetCrashCleanup registers the function that restores the display before a crash report
// Backends register their screen finalizer here once it is initialized
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanup = fn
}

// HandleCrash is the unified panic handler that restores the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashCleanup = nil
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	}

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
