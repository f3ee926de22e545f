package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const LogLevelEnv = "ADDRESS_PARSER_LOG_LEVEL"
const LogFormatEnv = "ADDRESS_PARSER_LOG_FORMAT"

var LogFormats = []string{"text", "json", "color-text"}

// LogLevel picks the level for a -v count. Any -v wins over $ADDRESS_PARSER_LOG_LEVEL,
// and with neither set only warnings are logged so CLI output stays clean.
func LogLevel(verbosity int) (logrus.Level, error) {
	switch {
	case verbosity == 1:
		return logrus.InfoLevel, nil
	case verbosity == 2:
		return logrus.DebugLevel, nil
	case verbosity >= 3:
		return logrus.TraceLevel, nil
	}
	level := os.Getenv(LogLevelEnv)
	if level == "" {
		return logrus.WarnLevel, nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", LogLevelEnv, err)
	}
	return parsed, nil
}

// LogFormatter returns the formatter named by $ADDRESS_PARSER_LOG_FORMAT, text by default.
func LogFormatter() (logrus.Formatter, error) {
	format := strings.ToLower(os.Getenv(LogFormatEnv))
	switch format {
	case "", "text":
		return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	case "color-text":
		return &logrus.TextFormatter{ForceColors: true, FullTimestamp: true}, nil
	}
	return nil, fmt.Errorf("invalid %s %q: expected one of %s", LogFormatEnv, format, strings.Join(LogFormats, ", "))
}

// ConfigureLogger sets the standard logrus logger. Nothing is changed on error.
func ConfigureLogger(verbosity int) error {
	level, err := LogLevel(verbosity)
	if err != nil {
		return err
	}
	formatter, err := LogFormatter()
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(formatter)
	return nil
}
