package sysmon

import (
	"errors"
	"sync"
)

// ErrNotInitialized is returned by Sample when Initialize has not been
// called. The message is part of the host-facing contract and is surfaced
// verbatim across the embedding boundary.
var ErrNotInitialized = errors.New("System monitor not initialized")

// slotState tracks whether the process-wide monitor slot holds a Monitor.
type slotState int

const (
	stateUninitialized slotState = iota
	stateReady
)

func (s slotState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// slot is the process-wide storage for the single Monitor. The embedding
// boundary is argument-in/value-out with no object handles, so the core
// holds its own state for the life of the process. The mutex makes the two
// package-level calls safe from any goroutine; it is uncontended when the
// host is single-threaded.
type slot struct {
	mu      sync.Mutex
	state   slotState
	monitor *Monitor
}

var global slot

// Initialize builds a Monitor from the given preferences and stores it in
// the process-wide slot, silently discarding any previous Monitor.
// pollIntervalMs is advisory (see Config.PollInterval). Initialize always
// succeeds: provider warm-up problems degrade individual metrics on later
// refreshes rather than failing here.
func Initialize(pollIntervalMs int, useIcons bool) {
	m := NewMonitor(Config{PollInterval: pollIntervalMs, UseIcons: useIcons})

	global.mu.Lock()
	defer global.mu.Unlock()
	global.monitor = m
	global.state = stateReady
}

// Sample refreshes all metrics on the stored Monitor and returns the three
// rendered segments joined with Separator, in the fixed order CPU, memory,
// temperature. It returns ErrNotInitialized if Initialize has never been
// called; no refresh is performed in that case.
func Sample() (string, error) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.state != stateReady {
		return "", ErrNotInitialized
	}
	global.monitor.RefreshAll()
	return global.monitor.Status(), nil
}
