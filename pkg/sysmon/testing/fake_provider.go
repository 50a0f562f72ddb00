// Package testing provides test doubles for the sysmon package.
package testing

import (
	"sync"

	"github.com/statuskit/sysmon/pkg/sysmon"
)

// FakeProvider is a scripted sysmon.Provider for deterministic tests.
// Values are returned as configured; every read is counted so tests can
// assert refresh ordering and warm-up behavior.
type FakeProvider struct {
	mu sync.Mutex

	// Scripted readings
	CPUValue float64
	MemUsed  uint64
	MemTotal uint64
	Temps    []float64

	// Scripted failures
	CPUErr  error
	MemErr  error
	TempErr error

	// Call tracking
	CPUCalls  int
	MemCalls  int
	TempCalls int
	CallOrder []string // "cpu", "mem", "temp" in observed order
}

var _ sysmon.Provider = (*FakeProvider)(nil)

// NewFakeProvider returns a fake with plausible defaults: a half-loaded CPU,
// 4 of 16 GiB used, and a single 42°C sensor.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		CPUValue: 50.0,
		MemUsed:  4 << 30,
		MemTotal: 16 << 30,
		Temps:    []float64{42.0},
	}
}

// CPUPercent returns the scripted CPU utilization.
func (f *FakeProvider) CPUPercent() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CPUCalls++
	f.CallOrder = append(f.CallOrder, "cpu")
	if f.CPUErr != nil {
		return 0, f.CPUErr
	}
	return f.CPUValue, nil
}

// Memory returns the scripted used/total bytes.
func (f *FakeProvider) Memory() (uint64, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.MemCalls++
	f.CallOrder = append(f.CallOrder, "mem")
	if f.MemErr != nil {
		return 0, 0, f.MemErr
	}
	return f.MemUsed, f.MemTotal, nil
}

// SensorTemps returns the scripted sensor readings.
func (f *FakeProvider) SensorTemps() ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TempCalls++
	f.CallOrder = append(f.CallOrder, "temp")
	if f.TempErr != nil {
		return nil, f.TempErr
	}
	return f.Temps, nil
}

// SetTemps replaces the scripted sensor list (e.g., to simulate a sensor
// detaching between samples).
func (f *FakeProvider) SetTemps(temps []float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Temps = temps
}

// ResetCalls clears call counters and the recorded order.
func (f *FakeProvider) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CPUCalls = 0
	f.MemCalls = 0
	f.TempCalls = 0
	f.CallOrder = nil
}
