// Command mousetrail draws a ring of glowing dots that trails raw mouse
// motion on a transparent, always-on-top overlay.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/sync/errgroup"

	"mousetrail/app"
	"mousetrail/hal"
	"mousetrail/internal/buildinfo"
	"mousetrail/internal/cli"
	"mousetrail/internal/rawinput"
	"mousetrail/internal/sampler"
	"mousetrail/internal/stream"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Main(ctx, command(), os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func command() *ffcli.Command {
	fs := flag.NewFlagSet("mousetrail", flag.ContinueOnError)
	var opts cli.Options
	opts.Bind(fs)
	source := fs.String("source", "", fmt.Sprintf("Raw input backend: %s (default %s).", cli.Backends(rawinput.Backends()), rawinput.DefaultBackend))
	keepHitTest := fs.Bool("keep-hit-test", false, "Start with click capture on instead of passthrough.")

	return cli.Command("mousetrail", "Glowing mouse trail overlay", "MOUSETRAIL", fs,
		func(ctx context.Context, _ []string) error {
			if opts.Version {
				cli.PrintVersion(os.Stdout, "mousetrail")
				return nil
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return run(ctx, &opts, *source, app.TrailConfig{KeepHitTest: *keepHitTest})
		})
}

func run(ctx context.Context, opts *cli.Options, source string, cfg app.TrailConfig) error {
	h, closeLog, err := opts.OpenHAL()
	if err != nil {
		return err
	}
	defer closeLog()
	log := h.Logger()

	src, err := rawinput.Open(source)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	samples := stream.New()
	s := sampler.New(src, samples, sampler.WithLogger(log))

	// A dead input source freezes the trail; it does not stop rendering, so
	// the sampler's error is only reported once both sides are done.
	var g errgroup.Group
	g.Go(func() error { return s.Run(ctx) })

	hal.Logf(log, "mousetrail %s: mode=%s source=%s", buildinfo.Short(), opts.Mode, sourceName(source))
	err = opts.Run(ctx, h, buildinfo.Title("mousetrail"), true, func(h hal.HAL) hal.Scene {
		return app.NewTrail(h, samples, cfg)
	})
	cancel()
	if serr := g.Wait(); serr != nil {
		hal.Logf(log, "mousetrail: %v", serr)
	}
	return err
}

func sourceName(s string) string {
	if s == "" {
		return rawinput.DefaultBackend
	}
	return s
}
