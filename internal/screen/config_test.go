package screen

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"vgacon/vga"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Rows != 25 || cfg.Cols != 80 {
		t.Errorf("geometry = %dx%d", cfg.Cols, cfg.Rows)
	}
	attr, err := cfg.Attr()
	if err != nil || attr != vga.DefaultColor {
		t.Errorf("Attr() = 0x%02x, %v", uint8(attr), err)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:    "toml",
			file:    "vga.toml",
			content: "rows = 10\ncols = 40\nforeground = \"yellow\"\nbackground = \"Blue\"\nscript = \"boot.txt\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Rows != 10 || cfg.Cols != 40 || cfg.Script != "boot.txt" {
					t.Errorf("cfg = %+v", cfg)
				}
				if attr, _ := cfg.Attr(); attr != vga.NewColorCode(vga.Yellow, vga.Blue) {
					t.Errorf("Attr() = 0x%02x", uint8(attr))
				}
				if cfg.LogLevel != "info" {
					t.Errorf("unset log level = %q, want default", cfg.LogLevel)
				}
			},
		},
		{
			name:    "yaml",
			file:    "vga.yaml",
			content: "rows: 5\nscale: 3\nlog_level: debug\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Rows != 5 || cfg.Cols != 80 || cfg.Scale != 3 || cfg.LogLevel != "debug" {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name:    "bad geometry",
			file:    "vga.toml",
			content: "rows = 0\n",
			wantErr: ErrInvalidGeometry,
		},
		{
			name:    "bad color",
			file:    "vga.yml",
			content: "background: mauve\n",
			wantErr: ErrUnknownColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeFile(t, tt.file, tt.content))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("missing file should fail")
	}
	if _, err := LoadConfig(writeFile(t, "vga.ini", "rows=1")); err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("unknown extension error = %v", err)
	}
	if _, err := LoadConfig(writeFile(t, "vga.toml", "rows = [")); err == nil {
		t.Errorf("malformed toml should fail")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogFile = filepath.Join(t.TempDir(), "vga.log")

	l, closer, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", l.GetLevel())
	}
	l.WithField("rows", 25).Debug("console up")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "msg=console up") || !strings.Contains(string(data), "rows=25") {
		t.Errorf("log = %q", data)
	}

	cfg.LogLevel = "loud"
	if _, _, err := NewLogger(cfg); err == nil {
		t.Errorf("bad level should fail")
	}
}
