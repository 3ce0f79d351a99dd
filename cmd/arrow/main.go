// Command arrow draws a single arrow that points along the latest cursor
// displacement and grows with its length.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3/ffcli"

	"mousetrail/app"
	"mousetrail/hal"
	"mousetrail/internal/buildinfo"
	"mousetrail/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, command(), os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func command() *ffcli.Command {
	fs := flag.NewFlagSet("arrow", flag.ContinueOnError)
	var opts cli.Options
	opts.Bind(fs)

	return cli.Command("arrow", "Cursor direction arrow overlay", "ARROW", fs,
		func(ctx context.Context, _ []string) error {
			if opts.Version {
				cli.PrintVersion(os.Stdout, "arrow")
				return nil
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			h, closeLog, err := opts.OpenHAL()
			if err != nil {
				return err
			}
			defer closeLog()

			hal.Logf(h.Logger(), "arrow %s: mode=%s", buildinfo.Short(), opts.Mode)
			// Immediate present: the arrow tracks the cursor without vsync lag.
			return opts.Run(ctx, h, buildinfo.Title("arrow"), false, func(h hal.HAL) hal.Scene {
				return app.NewArrow(h)
			})
		})
}
