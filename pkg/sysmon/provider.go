package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Provider is the handle to the OS metrics subsystem. Every method performs
// a fresh, blocking query; values must not be cached between calls because
// metrics subsystems report stale data until re-queried.
type Provider interface {
	// CPUPercent returns aggregate utilization across all logical cores,
	// 0.0-100.0 (unclamped above 100.0 where the platform overshoots).
	CPUPercent() (float64, error)

	// Memory returns used and total physical memory in bytes.
	Memory() (used, total uint64, err error)

	// SensorTemps enumerates thermal sensors fresh and returns their
	// readings in °C, in platform enumeration order. An empty slice with a
	// nil error means the machine exposes no thermal sensors.
	SensorTemps() ([]float64, error)
}

// newProvider builds the default OS-backed provider. Package variable so
// tests can substitute a deterministic provider behind Initialize.
var newProvider = func() Provider { return systemProvider{} }

// systemProvider reads metrics via gopsutil.
type systemProvider struct{}

func (systemProvider) CPUPercent() (float64, error) {
	// interval 0 measures against the previous call, which is why Monitor
	// primes this at construction.
	pct, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(pct) == 0 {
		return 0, fmt.Errorf("no cpu utilization data reported")
	}
	return pct[0], nil
}

func (systemProvider) Memory() (uint64, uint64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}
	return v.Used, v.Total, nil
}

func (systemProvider) SensorTemps() ([]float64, error) {
	sensors, err := host.SensorsTemperatures()
	if err != nil {
		// Many platforms expose no sensors at all; treat that the same as
		// an empty enumeration rather than a failure.
		return nil, nil
	}
	temps := make([]float64, 0, len(sensors))
	for _, s := range sensors {
		temps = append(temps, s.Temperature)
	}
	return temps, nil
}
