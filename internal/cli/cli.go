// Package cli holds the flag set and runner dispatch shared by the overlay
// binaries.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"mousetrail/hal"
	"mousetrail/internal/buildinfo"
)

// Runner modes.
const (
	ModeWindow   = "window"
	ModeHeadless = "headless"
	ModeTerminal = "term"
)

var ErrBadMode = errors.New("unknown mode")

// Options are the flags common to every overlay binary.
type Options struct {
	Mode    string
	Hz      int
	Ticks   uint64
	Log     string
	Console bool
	Width   int
	Height  int
	X, Y    int
	Version bool
}

// Bind registers the common flags on fs.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Mode, "mode", ModeWindow, "Runner: window, headless or term.")
	fs.IntVar(&o.Hz, "hz", 60, "Tick rate in headless and term modes.")
	fs.Uint64Var(&o.Ticks, "ticks", 0, "Stop after N ticks in headless and term modes (0 = run until interrupted).")
	fs.StringVar(&o.Log, "log", "", "Append log lines to this file instead of stdout.")
	fs.BoolVar(&o.Console, "console", false, "Show the log console at startup (F1 toggles).")
	fs.IntVar(&o.Width, "width", 1900, "Overlay width in pixels.")
	fs.IntVar(&o.Height, "height", 1080, "Overlay height in pixels.")
	fs.IntVar(&o.X, "x", 0, "Overlay window X position.")
	fs.IntVar(&o.Y, "y", 0, "Overlay window Y position.")
	fs.BoolVar(&o.Version, "version", false, "Print the version and exit.")
	fs.String("config", "", "Read flags from this file (one 'name value' per line).")
}

// Validate checks option values that flag parsing cannot.
func (o *Options) Validate() error {
	switch o.Mode {
	case ModeWindow, ModeHeadless, ModeTerminal:
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", ErrBadMode, o.Mode, ModeWindow, ModeHeadless, ModeTerminal)
	}
	if o.Hz <= 0 {
		return fmt.Errorf("hz must be positive, got %d", o.Hz)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", o.Width, o.Height)
	}
	return nil
}

// Command builds the root command for a binary. Flags may also come from
// PREFIX_NAME environment variables or the -config file.
func Command(name, shortHelp, envPrefix string, fs *flag.FlagSet, exec func(context.Context, []string) error) *ffcli.Command {
	return &ffcli.Command{
		Name:       name,
		ShortUsage: name + " [flags]",
		ShortHelp:  shortHelp,
		LongHelp: "Controls:\n  P    Toggle click passthrough\n  F1   Toggle the log console\n  Esc  Quit\n\n" +
			"Environment:\n  Every flag can be set as " + envPrefix + "_<FLAG>.",
		FlagSet: fs,
		Options: []ff.Option{
			ff.WithEnvVarPrefix(envPrefix),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ff.PlainParser),
			ff.WithAllowMissingConfigFile(true),
		},
		Exec: exec,
	}
}

// Main parses args, runs the command and maps the result to an exit code.
func Main(ctx context.Context, cmd *ffcli.Command, args []string, stderr io.Writer) int {
	if err := cmd.ParseAndRun(ctx, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// OpenHAL builds the host HAL. In term mode stdout belongs to the screen, so
// logs go to the -log file or nowhere.
func (o *Options) OpenHAL() (hal.HAL, func() error, error) {
	var w io.Writer = os.Stdout
	closer := func() error { return nil }
	if o.Log != "" {
		f, err := os.OpenFile(o.Log, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		w, closer = f, f.Close
	} else if o.Mode == ModeTerminal {
		w = io.Discard
	}
	return hal.New(hal.HostConfig{Log: w}), closer, nil
}

// Run drives newScene with the runner selected by o.Mode. Window mode blocks
// the calling goroutine, which must be the main one.
func (o *Options) Run(ctx context.Context, h hal.HAL, title string, vsync bool, newScene func(hal.HAL) hal.Scene) error {
	switch o.Mode {
	case ModeHeadless:
		err := hal.RunHeadless(ctx, h, hal.HeadlessConfig{Hz: o.Hz, Ticks: o.Ticks}, newScene)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case ModeTerminal:
		err := hal.RunTerminal(ctx, h, hal.TerminalConfig{
			Hz:     o.Hz,
			Ticks:  o.Ticks,
			Width:  o.Width,
			Height: o.Height,
			Title:  title,
		}, newScene)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	default:
		return hal.RunWindow(ctx, h, hal.WindowConfig{
			Title:   title,
			Width:   o.Width,
			Height:  o.Height,
			X:       o.X,
			Y:       o.Y,
			Vsync:   vsync,
			Console: o.Console,
		}, newScene)
	}
}

// PrintVersion writes the long version line for name.
func PrintVersion(w io.Writer, name string) {
	fmt.Fprintf(w, "%s %s\n", name, buildinfo.String())
}

// Backends formats a backend list for flag help.
func Backends(names []string) string {
	return strings.Join(names, ", ")
}
