package core

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// captureCrash swaps the exit and output hooks for the duration of a test
func captureCrash(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var buf bytes.Buffer
	code := -1
	prevOut, prevExit := crashOutput, crashExit
	crashOutput = &buf
	crashExit = func(c int) { code = c }
	t.Cleanup(func() {
		crashOutput, crashExit = prevOut, prevExit
		SetCrashCleanup(nil)
	})
	return &buf, &code
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, code := captureCrash(t)
	HandleCrash(nil)
	if buf.Len() != 0 || *code != -1 {
		t.Error("Expected nil panic value to be ignored")
	}
}

func TestHandleCrashRunsCleanupOnce(t *testing.T) {
	buf, code := captureCrash(t)
	calls := 0
	SetCrashCleanup(func() { calls++ })

	HandleCrash("boom")
	HandleCrash("again")

	if calls != 1 {
		t.Errorf("Expected cleanup once, got %d", calls)
	}
	if *code != 1 {
		t.Errorf("Expected exit code 1, got %d", *code)
	}
	if !strings.Contains(buf.String(), "CRASH DETECTED: boom") {
		t.Errorf("Expected crash banner, got %q", buf.String())
	}
}

func TestGoRecoversPanic(t *testing.T) {
	captureCrash(t)
	exited := make(chan int, 1)
	crashExit = func(c int) { exited <- c }

	Go(func() { panic("tick failed") })

	select {
	case c := <-exited:
		if c != 1 {
			t.Errorf("Expected exit code 1, got %d", c)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected panic to reach the crash handler")
	}
}
