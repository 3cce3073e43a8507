package engine

import (
	"sync"
	"time"
)

// PausableClock reports game time: real elapsed time minus every pause
type PausableClock struct {
	mu sync.RWMutex

	source    TimeProvider
	startTime time.Time

	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock over source (real time when nil)
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source:    source,
		startTime: source.Now(),
	}
}

// Now returns current game time; frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	ref := pc.source.Now()
	if pc.paused {
		ref = pc.pauseStartTime
	}
	return pc.startTime.Add(ref.Sub(pc.startTime) - pc.totalPausedTime)
}

// RealTime returns the underlying source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement; returns false if already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return false
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
	return true
}

// Resume continues game time advancement; returns false if not paused
func (pc *PausableClock) Resume() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return false
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
