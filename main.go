// Package main implements the main entry point for the CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/sdl"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			runner.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	runner.PrintBanner(logger, opts, version, commit, date)

	r := runner.New(logger, os.Stdout, frontends())
	if err := r.Execute(ctx, opts); err != nil {
		// Handle quit requests and context cancellation (Ctrl+C) gracefully
		if errors.Is(err, driver.ErrQuit) || errors.Is(err, context.Canceled) {
			logger.Info("Emulation ended")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func frontends() map[string]runner.FrontendConstructor {
	return map[string]runner.FrontendConstructor{
		options.FrontendSDL: func(opts options.Program) (driver.Frontend, error) {
			return sdl.New(sdl.Options{
				Scale:      opts.Scale,
				Foreground: opts.Foreground,
				Background: opts.Background,
				Grid:       opts.Grid,
				Pitch:      opts.Pitch,
				FPS:        opts.FPS,
			})
		},
		options.FrontendTerminal: func(options.Program) (driver.Frontend, error) {
			return terminal.New(os.Stdin, os.Stdout, terminal.DefaultHoldFrames)
		},
		options.FrontendHeadless: func(options.Program) (driver.Frontend, error) {
			return headless.New(os.Stdout), nil
		},
	}
}
