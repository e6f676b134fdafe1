// Command vgashot renders the screen a byte script leaves behind after the
// kernel boot sequence.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"vgacon/internal/screen"
	"vgacon/kernel"
	"vgacon/vga"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vgashot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "Path to a TOML or YAML configuration file")
		script     = fs.String("script", "", "File whose bytes are written after boot")
		output     = fs.String("o", "screen.png", "Output file")
		text       = fs.Bool("text", false, "Write the screen as text instead of PNG")
		scale      = fs.Int("scale", 0, "Pixel scale factor")
		fault      = fs.Bool("panic", false, "Show the kernel fault indicator")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vgashot [options]\n")
		fmt.Fprintf(stderr, "Boots the console on an emulated buffer, writes the script and renders the result\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := screen.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *script != "" {
		cfg.Script = *script
	}
	if *scale != 0 {
		cfg.Scale = *scale
	}

	log, closer, err := screen.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()
	if cfg.LogFile == "" {
		log.SetOutput(stderr)
	}

	s, err := shoot(cfg, *fault, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *text {
		if *output == "-" {
			fmt.Fprint(stdout, s.Text())
			return 0
		}
		if err := os.WriteFile(*output, []byte(s.Text()), 0o644); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	} else if err := screen.SavePNG(s, *output, cfg.Scale); err != nil {
		fmt.Fprintf(stderr, "Error: writing %s: %v\n", *output, err)
		return 1
	}

	log.WithFields(logrus.Fields{
		"output":      *output,
		"fingerprint": fmt.Sprintf("%016x", s.Fingerprint()),
	}).Info("screen written")
	return 0
}

// shoot boots a fresh console, replays the script and captures the grid.
func shoot(cfg screen.Config, fault bool, log *logrus.Logger) (screen.Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return screen.Snapshot{}, err
	}
	attr, _ := cfg.Attr()

	buf := vga.NewTextBuffer(cfg.Rows, cfg.Cols)
	trace := log.WriterLevel(logrus.DebugLevel)
	defer trace.Close()
	kernel.Boot(buf, attr, trace)

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return screen.Snapshot{}, fmt.Errorf("reading script: %w", err)
		}
		if _, err := vga.Write(data); err != nil {
			return screen.Snapshot{}, err
		}
	}

	if fault {
		// Drawn directly, as the fault path does; the halt is not emulated.
		vga.ShowPanicIndicator(buf)
	}
	return screen.Capture(buf), nil
}
