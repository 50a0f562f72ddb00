package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/statuskit/sysmon/internal/config"
	"github.com/statuskit/sysmon/internal/errors"
	"github.com/statuskit/sysmon/pkg/sysmon"
)

// sampleOutput is the JSON shape for 'sysmon sample --json'.
type sampleOutput struct {
	CPU         string `json:"cpu"`
	Memory      string `json:"memory"`
	Temperature string `json:"temperature"`
	Line        string `json:"line"`
}

// sampleCommand takes one sample and prints it. iconsSet reports whether the
// --icons flag was given explicitly; when it wasn't, the config value wins.
func sampleCommand(iconsSet, icons, jsonOut bool, configPath string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	useIcons := cfg.UseIcons
	if iconsSet {
		useIcons = icons
	}

	sysmon.Initialize(cfg.PollIntervalMs, useIcons)
	line, err := sysmon.Sample()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrState,
			"Sampling failed",
			"This is a bug; Initialize should always precede Sample here")
	}

	if jsonOut {
		data, err := json.MarshalIndent(splitSegments(line), "", "  ")
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrSample,
				"Failed to encode sample as JSON",
				"This is a bug; please report it")
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(line)
	return nil
}

// splitSegments breaks a rendered status line into its three segments. The
// line always contains exactly two separators, so a well-formed split has
// three parts; anything else is passed through untouched in Line.
func splitSegments(line string) sampleOutput {
	out := sampleOutput{Line: line}
	parts := strings.SplitN(line, sysmon.Separator, 3)
	if len(parts) == 3 {
		out.CPU = parts[0]
		out.Memory = parts[1]
		out.Temperature = parts[2]
	}
	return out
}
