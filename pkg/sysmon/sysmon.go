// Package sysmon samples local system metrics (CPU utilization, memory
// usage, and a thermal sensor) and renders them as a single status line for
// embedding hosts such as status bars and desktop widgets.
//
// The package exposes two entry points for hosts: Initialize, which stores a
// process-wide Monitor built from the caller's presentation preferences, and
// Sample, which refreshes every metric and returns the rendered line. Both
// calls are synchronous; the host owns the polling schedule.
package sysmon

import (
	"fmt"

	"github.com/statuskit/sysmon/internal/logger"
)

// Separator joins the three rendered segments in Sample output.
const Separator = " | "

const bytesPerGiB = 1024 * 1024 * 1024

// Config holds presentation preferences for a Monitor. It is a plain value;
// changing preferences requires constructing a new Monitor (or calling
// Initialize again).
type Config struct {
	// PollInterval is the suggested sampling interval in milliseconds.
	// It is advisory: the core never schedules anything with it, the
	// embedding host's render loop does.
	PollInterval int

	// UseIcons selects glyph labels instead of text labels at render time.
	UseIcons bool
}

// Monitor owns a live metrics Provider and the most recently rendered
// display string for each metric. Refresh methods re-query the provider and
// re-render in place; a failed refresh of one metric leaves its previous
// text and never touches the other two.
type Monitor struct {
	cfg      Config
	provider Provider
	log      logger.Logger

	cpuText  string
	memText  string
	tempText string
}

// NewMonitor builds a Monitor backed by the default OS metrics provider.
// Construction never fails: a provider that cannot enumerate sensors (or
// even read metrics at all) degrades per-metric on refresh instead.
func NewMonitor(cfg Config) *Monitor {
	return NewMonitorWithProvider(cfg, newProvider())
}

// NewMonitorWithProvider builds a Monitor on an explicit provider. Embedders
// and tests use this to control sensor ordering and values deterministically.
func NewMonitorWithProvider(cfg Config, p Provider) *Monitor {
	m := &Monitor{
		cfg:      cfg,
		provider: p,
		log:      logger.Default(),
	}
	m.warm()
	return m
}

// warm performs one priming read of every metric class so the provider is
// hot before the first display refresh. CPU utilization in particular is a
// delta measurement: the first read establishes the baseline window.
// Results are discarded and errors only logged; the text fields stay empty.
func (m *Monitor) warm() {
	if _, err := m.provider.CPUPercent(); err != nil {
		m.log.Debug("warm-up cpu read failed: %v", err)
	}
	if _, _, err := m.provider.Memory(); err != nil {
		m.log.Debug("warm-up memory read failed: %v", err)
	}
	if _, err := m.provider.SensorTemps(); err != nil {
		m.log.Debug("warm-up sensor enumeration failed: %v", err)
	}
}

// Config returns the configuration the Monitor was built with.
func (m *Monitor) Config() Config {
	return m.cfg
}

// RefreshCPU re-queries aggregate CPU utilization across all logical cores
// and re-renders the CPU segment. The percentage may transiently exceed
// 100.0 on some platforms due to measurement windowing; it is not clamped.
func (m *Monitor) RefreshCPU() {
	pct, err := m.provider.CPUPercent()
	if err != nil {
		m.log.Debug("cpu refresh failed: %v", err)
		return
	}
	if m.cfg.UseIcons {
		m.cpuText = fmt.Sprintf("%s %.2f%%", IconCPU, pct)
	} else {
		m.cpuText = fmt.Sprintf("CPU: %.2f%%", pct)
	}
}

// RefreshMemory re-queries used and total physical memory and re-renders
// the memory segment as used/total in gibibytes.
func (m *Monitor) RefreshMemory() {
	used, total, err := m.provider.Memory()
	if err != nil {
		m.log.Debug("memory refresh failed: %v", err)
		return
	}
	usedGiB := float64(used) / bytesPerGiB
	totalGiB := float64(total) / bytesPerGiB
	if m.cfg.UseIcons {
		m.memText = fmt.Sprintf("%s %.2f/%.2f GB", IconMemory, usedGiB, totalGiB)
	} else {
		m.memText = fmt.Sprintf("Mem: %.2f/%.2f GB", usedGiB, totalGiB)
	}
}

// RefreshTemperature enumerates thermal sensors fresh (sensor lists can
// change as hardware attaches and detaches) and renders the first one in
// enumeration order. Machines without any thermal sensor are common; in
// that case the previous temperature text is kept as-is.
func (m *Monitor) RefreshTemperature() {
	temps, err := m.provider.SensorTemps()
	if err != nil {
		m.log.Debug("sensor enumeration failed: %v", err)
		return
	}
	if len(temps) == 0 {
		return
	}
	if m.cfg.UseIcons {
		m.tempText = fmt.Sprintf("%s %.2f°C", IconTemperature, temps[0])
	} else {
		m.tempText = fmt.Sprintf("Temp: %.2f°C", temps[0])
	}
}

// RefreshAll refreshes CPU, memory, and temperature, in that order. Each
// sub-refresh commits independently; there is no rollback if a later one
// fails.
func (m *Monitor) RefreshAll() {
	m.RefreshCPU()
	m.RefreshMemory()
	m.RefreshTemperature()
}

// CPU returns the last-rendered CPU segment (empty before the first
// successful refresh).
func (m *Monitor) CPU() string { return m.cpuText }

// Memory returns the last-rendered memory segment.
func (m *Monitor) Memory() string { return m.memText }

// Temperature returns the last-rendered temperature segment.
func (m *Monitor) Temperature() string { return m.tempText }

// Status joins the three segments with Separator in the fixed order
// CPU, memory, temperature.
func (m *Monitor) Status() string {
	return m.cpuText + Separator + m.memText + Separator + m.tempText
}
