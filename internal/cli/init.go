package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/statuskit/sysmon/internal/config"
	"github.com/statuskit/sysmon/internal/errors"
	"github.com/statuskit/sysmon/internal/ui"
)

// initCommand creates a .sysmon.yaml in the current directory, prompting for
// the two presentation preferences.
func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	intervalStr := strconv.Itoa(cfg.PollIntervalMs)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Poll interval (milliseconds)").
				Description("Suggested sampling interval for your status bar's timer").
				Placeholder("2000").
				Value(&intervalStr).
				Validate(validateIntervalInput),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use icon labels?").
				Description("Glyph labels need a Nerd Font; text labels (CPU:/Mem:/Temp:) work everywhere").
				Value(&cfg.UseIcons),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or edit .sysmon.yaml by hand")
	}

	// Validated above; Atoi cannot fail here.
	cfg.PollIntervalMs, _ = strconv.Atoi(strings.TrimSpace(intervalStr))

	if err := config.Save(cfg, configPath); err != nil {
		return err
	}

	fmt.Printf("%s Wrote %s\n", ui.SymbolSuccess, configPath)
	return nil
}

// validateIntervalInput accepts any non-negative integer.
func validateIntervalInput(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a whole number of milliseconds")
	}
	if n < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}
