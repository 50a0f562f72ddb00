package sysmon

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statuskit/sysmon/internal/logger"
)

// stubProvider is a minimal scripted Provider for in-package tests.
// (pkg/sysmon/testing.FakeProvider imports this package, so it cannot be
// used here without a cycle.)
type stubProvider struct {
	cpu      float64
	cpuErr   error
	used     uint64
	total    uint64
	memErr   error
	temps    []float64
	tempErr  error
	calls    []string
	cpuCalls int
}

func (s *stubProvider) CPUPercent() (float64, error) {
	s.calls = append(s.calls, "cpu")
	s.cpuCalls++
	return s.cpu, s.cpuErr
}

func (s *stubProvider) Memory() (uint64, uint64, error) {
	s.calls = append(s.calls, "mem")
	return s.used, s.total, s.memErr
}

func (s *stubProvider) SensorTemps() ([]float64, error) {
	s.calls = append(s.calls, "temp")
	return s.temps, s.tempErr
}

func newStub() *stubProvider {
	return &stubProvider{
		cpu:   12.3456,
		used:  2 << 30,
		total: 8 << 30,
		temps: []float64{55.5, 70.0},
	}
}

func TestNewMonitorWarmsProviderAndStartsEmpty(t *testing.T) {
	stub := newStub()
	m := NewMonitorWithProvider(Config{PollInterval: 2000}, stub)

	// One priming read per metric class, no rendering yet.
	assert.Equal(t, []string{"cpu", "mem", "temp"}, stub.calls)
	assert.Empty(t, m.CPU())
	assert.Empty(t, m.Memory())
	assert.Empty(t, m.Temperature())
}

func TestRefreshCPU(t *testing.T) {
	tests := []struct {
		name     string
		cpu      float64
		useIcons bool
		want     string
	}{
		{name: "text label", cpu: 12.3456, useIcons: false, want: "CPU: 12.35%"},
		{name: "icon label", cpu: 12.3456, useIcons: true, want: IconCPU + " 12.35%"},
		{name: "whole number keeps two decimals", cpu: 5, useIcons: false, want: "CPU: 5.00%"},
		{name: "overshoot is not clamped", cpu: 103.218, useIcons: false, want: "CPU: 103.22%"},
		{name: "zero", cpu: 0, useIcons: false, want: "CPU: 0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			stub.cpu = tt.cpu
			m := NewMonitorWithProvider(Config{UseIcons: tt.useIcons}, stub)
			m.RefreshCPU()
			assert.Equal(t, tt.want, m.CPU())
		})
	}
}

func TestRefreshMemoryConvertsBytesToGiB(t *testing.T) {
	stub := newStub()
	stub.used = 2 << 30  // 2 GiB
	stub.total = 8 << 30 // 8 GiB
	m := NewMonitorWithProvider(Config{}, stub)

	m.RefreshMemory()
	assert.Equal(t, "Mem: 2.00/8.00 GB", m.Memory())
}

func TestRefreshMemoryIconMode(t *testing.T) {
	stub := newStub()
	stub.used = 6442450944   // 6 GiB
	stub.total = 17179869184 // 16 GiB
	m := NewMonitorWithProvider(Config{UseIcons: true}, stub)

	m.RefreshMemory()
	assert.Equal(t, IconMemory+" 6.00/16.00 GB", m.Memory())
}

func TestRefreshMemoryUsedNeverExceedsTotal(t *testing.T) {
	// Odd byte counts should still render used <= total after rounding.
	stub := newStub()
	stub.used = 7816840703
	stub.total = 7816840704
	m := NewMonitorWithProvider(Config{}, stub)

	m.RefreshMemory()

	var used, total float64
	_, err := fmt.Sscanf(m.Memory(), "Mem: %f/%f GB", &used, &total)
	require.NoError(t, err)
	assert.LessOrEqual(t, used, total)
}

func TestRefreshTemperaturePicksFirstSensor(t *testing.T) {
	stub := newStub()
	stub.temps = []float64{48.912, 90.0, 30.0}
	m := NewMonitorWithProvider(Config{}, stub)

	m.RefreshTemperature()
	assert.Equal(t, "Temp: 48.91°C", m.Temperature())
}

func TestRefreshTemperatureIconMode(t *testing.T) {
	stub := newStub()
	stub.temps = []float64{61.0}
	m := NewMonitorWithProvider(Config{UseIcons: true}, stub)

	m.RefreshTemperature()
	assert.Equal(t, IconTemperature+" 61.00°C", m.Temperature())
}

func TestRefreshTemperatureNoSensorsKeepsPreviousText(t *testing.T) {
	stub := newStub()
	m := NewMonitorWithProvider(Config{}, stub)

	// Never set: stays empty across repeated no-sensor refreshes.
	stub.temps = nil
	m.RefreshTemperature()
	first := m.Temperature()
	m.RefreshTemperature()
	assert.Equal(t, first, m.Temperature())
	assert.Empty(t, m.Temperature())

	// Previously set: last good value survives the sensor detaching.
	stub.temps = []float64{40.0}
	m.RefreshTemperature()
	require.Equal(t, "Temp: 40.00°C", m.Temperature())

	stub.temps = nil
	m.RefreshTemperature()
	m.RefreshTemperature()
	assert.Equal(t, "Temp: 40.00°C", m.Temperature())
}

func TestFailedRefreshDoesNotCorruptOtherMetrics(t *testing.T) {
	stub := newStub()
	m := NewMonitorWithProvider(Config{}, stub)
	m.RefreshAll()

	cpuBefore := m.CPU()
	memBefore := m.Memory()
	tempBefore := m.Temperature()
	require.NotEmpty(t, cpuBefore)

	// CPU starts failing: its text freezes, the others keep updating.
	stub.cpuErr = fmt.Errorf("read failed")
	stub.used = 3 << 30
	m.RefreshAll()

	assert.Equal(t, cpuBefore, m.CPU())
	assert.NotEqual(t, memBefore, m.Memory())
	assert.Equal(t, "Mem: 3.00/8.00 GB", m.Memory())
	assert.Equal(t, tempBefore, m.Temperature())
}

func TestMonitorLogsThroughDefaultLogger(t *testing.T) {
	prev := logger.Default()
	defer logger.SetDefault(prev)

	buf := logger.NewBufferLogger()
	logger.SetDefault(buf)

	stub := newStub()
	m := NewMonitorWithProvider(Config{}, stub)
	buf.Clear() // ignore warm-up noise

	stub.cpuErr = fmt.Errorf("read failed")
	m.RefreshCPU()

	require.True(t, buf.HasLevel("debug"))
	assert.Contains(t, buf.Messages[0].Message, "cpu refresh failed")
}

func TestRefreshAllOrder(t *testing.T) {
	stub := newStub()
	m := NewMonitorWithProvider(Config{}, stub)
	stub.calls = nil // drop warm-up reads

	m.RefreshAll()
	assert.Equal(t, []string{"cpu", "mem", "temp"}, stub.calls)
}

func TestStatusJoinsSegmentsInOrder(t *testing.T) {
	stub := newStub()
	m := NewMonitorWithProvider(Config{}, stub)
	m.RefreshAll()

	status := m.Status()
	parts := strings.Split(status, Separator)
	require.Len(t, parts, 3)
	assert.True(t, strings.HasPrefix(parts[0], "CPU: "))
	assert.True(t, strings.HasPrefix(parts[1], "Mem: "))
	assert.True(t, strings.HasPrefix(parts[2], "Temp: "))
}

func TestConfigIsRetained(t *testing.T) {
	stub := newStub()
	m := NewMonitorWithProvider(Config{PollInterval: 5000, UseIcons: true}, stub)
	assert.Equal(t, 5000, m.Config().PollInterval)
	assert.True(t, m.Config().UseIcons)
}
