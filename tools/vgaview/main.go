// Command vgaview boots the console on an emulated text buffer and shows
// it in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"vgacon/internal/screen"
)

type options struct {
	configPath string
	follow     bool
	dump       bool

	// set from flags only when given, so they override the config file
	overrides screen.Config
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := screen.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyOverrides(&cfg, opts.overrides)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closer, err := screen.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	em, err := newEmulator(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer em.Close()

	if opts.dump || !term.IsTerminal(int(os.Stdout.Fd())) {
		if _, err := em.FeedScript(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Print(em.Snapshot().Text())
		return 0
	}

	if err := em.RunTerminal(opts.follow); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.overrides.Rows, "rows", 0, "Text rows (default 25)")
	flag.IntVar(&opts.overrides.Cols, "cols", 0, "Text columns (default 80)")
	flag.StringVar(&opts.overrides.Foreground, "fg", "", "Foreground color name")
	flag.StringVar(&opts.overrides.Background, "bg", "", "Background color name")
	flag.StringVar(&opts.overrides.Script, "script", "", "File whose bytes are written after boot")
	flag.StringVar(&opts.overrides.LogFile, "log-file", "", "Append logs to this file")
	flag.StringVar(&opts.overrides.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.follow, "follow", false, "Keep writing bytes appended to the script")
	flag.BoolVar(&opts.follow, "f", false, "Follow the script (shorthand)")
	flag.BoolVar(&opts.dump, "dump", false, "Print the final screen as text instead of displaying it")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vgaview - VGA text console emulator\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vgaview [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: q/Esc quit, p raise a kernel fault, c clear the screen\n")
	}

	flag.Parse()
	return opts
}

func applyOverrides(cfg *screen.Config, o screen.Config) {
	if o.Rows != 0 {
		cfg.Rows = o.Rows
	}
	if o.Cols != 0 {
		cfg.Cols = o.Cols
	}
	if o.Foreground != "" {
		cfg.Foreground = o.Foreground
	}
	if o.Background != "" {
		cfg.Background = o.Background
	}
	if o.Script != "" {
		cfg.Script = o.Script
	}
	if o.LogFile != "" {
		cfg.LogFile = o.LogFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}
