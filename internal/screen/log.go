package screen

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger at the configured level. With a log file set,
// output is appended there so it does not tear a full-screen display;
// otherwise it goes to stderr. The returned closer releases the file.
func NewLogger(cfg Config) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:   true,
		DisableSorting:  true,
		DisableQuote:    true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	}

	if cfg.LogFile == "" {
		l.SetOutput(os.Stderr)
		return l, nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	l.SetOutput(f)
	return l, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
