package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/statuskit/sysmon/internal/config"
	"github.com/statuskit/sysmon/internal/dashboard"
	"github.com/statuskit/sysmon/internal/errors"
	"github.com/statuskit/sysmon/internal/ui"
	"github.com/statuskit/sysmon/pkg/sysmon"
)

// minWatchInterval guards against spinning the sampler in a tight loop.
const minWatchInterval = 100 * time.Millisecond

// watchCommand runs the live TUI view.
func watchCommand(intervalFlag, configPath string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	interval, err := resolveInterval(intervalFlag, cfg.PollIntervalMs)
	if err != nil {
		return err
	}

	ui.ConfigureColor(cfg.Output.Color)
	sysmon.Initialize(int(interval/time.Millisecond), cfg.UseIcons)

	model := dashboard.NewModel(sysmon.Sample, interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// resolveInterval picks the refresh interval: the --interval flag when
// given, otherwise the config's advisory poll_interval_ms.
func resolveInterval(flag string, fallbackMs int) (time.Duration, error) {
	if flag == "" {
		return time.Duration(fallbackMs) * time.Millisecond, nil
	}

	parsed, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", flag),
			"Use a valid duration like 2s, 500ms, or 1m")
	}
	if parsed < minWatchInterval {
		return 0, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s to keep OS queries cheap", minWatchInterval))
	}
	return parsed, nil
}
