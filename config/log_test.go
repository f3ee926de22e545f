package config_test

import (
	"testing"

	"github.com/cordialsys/address-parser/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	vectors := []struct {
		verbosity int
		env       string
		level     logrus.Level
		err       string
	}{
		{verbosity: 0, level: logrus.WarnLevel},
		{verbosity: 1, level: logrus.InfoLevel},
		{verbosity: 2, level: logrus.DebugLevel},
		{verbosity: 5, level: logrus.TraceLevel},
		{verbosity: 0, env: "error", level: logrus.ErrorLevel},
		{verbosity: 0, env: "DEBUG", level: logrus.DebugLevel},
		{verbosity: 1, env: "error", level: logrus.InfoLevel},
		{verbosity: 0, env: "loud", err: "invalid ADDRESS_PARSER_LOG_LEVEL"},
		// -v skips the env var entirely
		{verbosity: 2, env: "loud", level: logrus.DebugLevel},
	}
	for _, v := range vectors {
		t.Run(v.env, func(t *testing.T) {
			t.Setenv(config.LogLevelEnv, v.env)
			level, err := config.LogLevel(v.verbosity)
			if v.err != "" {
				require.ErrorContains(t, err, v.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, v.level, level)
		})
	}
}

func TestLogFormatter(t *testing.T) {
	for _, format := range []string{"", "text", "JSON", "color-text"} {
		t.Setenv(config.LogFormatEnv, format)
		formatter, err := config.LogFormatter()
		require.NoError(t, err, format)
		require.NotNil(t, formatter)
	}

	t.Setenv(config.LogFormatEnv, "json")
	formatter, err := config.LogFormatter()
	require.NoError(t, err)
	require.IsType(t, &logrus.JSONFormatter{}, formatter)

	t.Setenv(config.LogFormatEnv, "xml")
	_, err = config.LogFormatter()
	require.ErrorContains(t, err, `invalid ADDRESS_PARSER_LOG_FORMAT "xml"`)
}

func TestConfigureLoggerLeavesLoggerOnError(t *testing.T) {
	before := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(before) })

	logrus.SetLevel(logrus.PanicLevel)
	t.Setenv(config.LogLevelEnv, "")
	t.Setenv(config.LogFormatEnv, "xml")
	require.Error(t, config.ConfigureLogger(1))
	require.Equal(t, logrus.PanicLevel, logrus.GetLevel())

	t.Setenv(config.LogFormatEnv, "text")
	require.NoError(t, config.ConfigureLogger(2))
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
