// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Quirks resolves the quirks preset and applies the individual overrides.
func Quirks(opts options.Machine) (machine.Quirks, error) {
	quirks, err := machine.Preset(opts.Quirks)
	if err != nil {
		return machine.Quirks{}, err
	}

	overrides := []struct {
		value  *bool
		target *bool
	}{
		{opts.VFReset, &quirks.VFReset},
		{opts.Memory, &quirks.Memory},
		{opts.DisplayWait, &quirks.DisplayWait},
		{opts.Clipping, &quirks.Clipping},
		{opts.Shifting, &quirks.Shifting},
		{opts.Jumping, &quirks.Jumping},
	}
	for _, override := range overrides {
		if override.value != nil {
			*override.target = *override.value
		}
	}
	return quirks, nil
}

// DriverOptions returns the frame loop options.
func DriverOptions(opts options.Machine) driver.Options {
	return driver.Options{
		FPS:                  opts.FPS,
		InstructionsPerFrame: opts.InstructionsPerFrame,
		MaxFrames:            opts.Frames,
	}
}
