package screen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"vgacon/vga"
)

var (
	// ErrInvalidGeometry reports a non-positive row or column count.
	ErrInvalidGeometry = errors.New("rows and cols must be positive")

	// ErrUnknownColor reports a color name outside the VGA palette.
	ErrUnknownColor = errors.New("unknown color")
)

// Config holds the settings shared by the hosted tools. A file sets the
// defaults, command-line flags override them.
type Config struct {
	Rows       int    `toml:"rows" yaml:"rows"`
	Cols       int    `toml:"cols" yaml:"cols"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`

	// Script is a file whose bytes are written to the console after the
	// boot sequence.
	Script string `toml:"script" yaml:"script"`

	// Scale multiplies the pixel size of rendered images.
	Scale int `toml:"scale" yaml:"scale"`

	LogFile  string `toml:"log_file" yaml:"log_file"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// DefaultConfig matches the hardware: 80x25, light green on black.
func DefaultConfig() Config {
	return Config{
		Rows:       vga.Rows,
		Cols:       vga.Cols,
		Foreground: vga.LightGreen.String(),
		Background: vga.Black.String(),
		Scale:      1,
		LogLevel:   "info",
	}
}

// LoadConfig reads path over DefaultConfig. The format follows the file
// extension: .toml, or .yaml/.yml. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("config file %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks geometry and color names.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidGeometry, c.Cols, c.Rows)
	}
	if _, err := c.Attr(); err != nil {
		return err
	}
	return nil
}

// Attr packs the configured colors.
func (c Config) Attr() (vga.ColorCode, error) {
	fg, ok := vga.ParseColor(c.Foreground)
	if !ok {
		return 0, fmt.Errorf("%w: foreground %q", ErrUnknownColor, c.Foreground)
	}
	bg, ok := vga.ParseColor(c.Background)
	if !ok {
		return 0, fmt.Errorf("%w: background %q", ErrUnknownColor, c.Background)
	}
	return vga.NewColorCode(fg, bg), nil
}
