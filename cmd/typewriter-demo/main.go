// typewriter-demo types and deletes lines of text in the terminal.
//
// With a terminal on stdout it runs a Bubble Tea program with one typewriter
// component per line. Otherwise (or with --plain) it drives the animators
// directly on the real clock and writes frames as plain text, rewriting the
// current line when stdout is a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/typewriter"
	"github.com/iw2rmb/typewriter/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	text          string
	typingSpeed   time.Duration
	deletingSpeed time.Duration
	pause         time.Duration
	loop          bool
	cursor        string
	configPath    string
	plain         bool
	logOutput     string
	version       bool
}

func run(args []string, stdout io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("typewriter-demo", pflag.ContinueOnError)
	flagSet.StringVar(&opts.text, "text", "Hello from typewriter.", "text to type")
	flagSet.DurationVar(&opts.typingSpeed, "typing-speed", config.DefaultTypingSpeed, "delay between typed characters")
	flagSet.DurationVar(&opts.deletingSpeed, "deleting-speed", config.DefaultDeletingSpeed, "delay between deleted characters")
	flagSet.DurationVar(&opts.pause, "pause", config.DefaultPause, "how long the full text stays before deletion")
	flagSet.BoolVar(&opts.loop, "loop", false, "type and delete forever")
	flagSet.StringVar(&opts.cursor, "cursor", "▌", "cursor drawn after the text (empty for none)")
	flagSet.StringVar(&opts.configPath, "config", "", "YAML scene file (overrides --text and timing flags)")
	flagSet.BoolVar(&opts.plain, "plain", false, "write plain text frames instead of running the TUI")
	flagSet.StringVar(&opts.logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&opts.version, "version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if opts.version {
		fmt.Fprintln(stdout, typewriter.Banner("typewriter-demo"))
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	logger, closeLog, err := newLogger(opts.logOutput)
	if err != nil {
		return err
	}
	defer closeLog()

	scene, err := loadScene(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	terminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if opts.plain || !terminal {
		logger.Debug("running plain mode", "lines", len(scene.Lines), "terminal", terminal)
		return runPlain(ctx, logger, scene, newPrinter(stdout, len(scene.Lines), terminal))
	}
	logger.Debug("running tui mode", "lines", len(scene.Lines))
	return runTUI(ctx, scene)
}

// loadScene reads --config, or builds a one-line scene from the flags.
func loadScene(opts options) (*config.Scene, error) {
	if opts.configPath != "" {
		return config.Load(opts.configPath)
	}
	scene := &config.Scene{
		Lines: []config.Line{{
			Text:          opts.text,
			TypingSpeed:   &opts.typingSpeed,
			DeletingSpeed: &opts.deletingSpeed,
			Pause:         &opts.pause,
			Loop:          opts.loop,
		}},
		Cursor:  opts.cursor,
		Reserve: true,
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return scene, nil
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = file.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `typewriter-demo types and deletes text on a timed loop.

Usage:
  typewriter-demo [flags]

Examples:
  # Type a line once
  typewriter-demo --text "Ship faster with AI"

  # Loop forever with a longer pause
  typewriter-demo --text "Book a demo" --loop --pause 3s

  # Animate several lines from a scene file, as plain text
  typewriter-demo --config hero.yaml --plain

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
