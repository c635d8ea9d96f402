package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// NewLogger returns a logrus logger writing to stderr so it never mixes with
// command output on stdout
func NewLogger(format LogFormat, level string) (*logrus.Logger, error) {
	return newLogger(os.Stderr, format, level)
}

func newLogger(out io.Writer, format LogFormat, level string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	switch LogFormat(strings.ToLower(string(format))) {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case FormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q (must be 'text' or 'json')", format)
	}

	if level == "" {
		level = logrus.InfoLevel.String()
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)

	return logger, nil
}
