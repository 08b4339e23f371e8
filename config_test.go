package logconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logging.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettings(t *testing.T) {
	t.Run("present keys override", func(t *testing.T) {
		path := writeSettings(t, `{
			"log_level": "warning",
			"file_log_level": "error",
			"syslog_facility": "local3",
			"use_console_logging": false
		}`)

		opts := DefaultOptions("app", "/var/log/app/app.log")
		loadSettings(path, &opts)

		assert.Equal(t, "warning", opts.LogLevel)
		assert.Equal(t, "error", opts.FileLogLevel)
		assert.Equal(t, "local3", opts.SyslogFacility)
		assert.False(t, opts.UseConsoleLogging)
	})

	t.Run("absent keys retain prior values", func(t *testing.T) {
		path := writeSettings(t, `{"log_level": "info"}`)

		opts := DefaultOptions("app", "/var/log/app/app.log")
		opts.FileLogLevel = "error"
		loadSettings(path, &opts)

		assert.Equal(t, "info", opts.LogLevel)
		assert.Equal(t, "error", opts.FileLogLevel)
		assert.Equal(t, "/var/log/app/app.log", opts.LogFile)
		assert.True(t, opts.UseFileLogging)
		assert.True(t, opts.UseSyslogLogging)
		assert.Equal(t, defaultFacility, opts.SyslogFacility)
	})

	t.Run("explicit false is applied", func(t *testing.T) {
		path := writeSettings(t, `{"use_file_logging": false, "use_syslog_logging": false}`)

		opts := DefaultOptions("app", "/var/log/app/app.log")
		loadSettings(path, &opts)

		assert.False(t, opts.UseFileLogging)
		assert.False(t, opts.UseSyslogLogging)
		assert.True(t, opts.UseConsoleLogging)
	})

	t.Run("log_file override", func(t *testing.T) {
		path := writeSettings(t, `{"log_file": "/tmp/other.log"}`)

		opts := DefaultOptions("app", "/var/log/app/app.log")
		loadSettings(path, &opts)

		assert.Equal(t, "/tmp/other.log", opts.LogFile)
	})

	t.Run("missing file leaves options untouched", func(t *testing.T) {
		opts := DefaultOptions("app", "/var/log/app/app.log")
		before := opts

		loadSettings(filepath.Join(t.TempDir(), "missing.json"), &opts)

		assert.Equal(t, before, opts)
	})

	t.Run("malformed file leaves options untouched", func(t *testing.T) {
		path := writeSettings(t, `{"log_level": `)

		opts := DefaultOptions("app", "/var/log/app/app.log")
		before := opts

		loadSettings(path, &opts)

		assert.Equal(t, before, opts)
	})
}

func TestNewWithConfigFile(t *testing.T) {
	t.Run("settings override constructor defaults before sinks are built", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSettings(t, `{"log_level": "error", "use_console_logging": false}`)

		opts := DefaultOptions("cfgfile", filepath.Join(dir, "logs", "app.log"))
		opts.UseSyslogLogging = false
		opts.ConfigFile = path

		s, err := NewWithRegistry(opts, NewRegistry())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		st := s.HandlerStatus()
		assert.Equal(t, "ERROR", st.LoggerLevel)
		assert.Equal(t, SinkStatus{Enabled: true, Level: "ERROR"}, st.File)
		assert.Equal(t, SinkStatus{Enabled: false, Level: levelNA}, st.Console)
	})

	t.Run("unreadable settings file is non-fatal", func(t *testing.T) {
		dir := t.TempDir()

		opts := DefaultOptions("cfgfile-bad", filepath.Join(dir, "logs", "app.log"))
		opts.UseSyslogLogging = false
		opts.UseConsoleLogging = false
		opts.LogLevel = "info"
		opts.ConfigFile = filepath.Join(dir, "nope.json")

		s, err := NewWithRegistry(opts, NewRegistry())
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })

		assert.Equal(t, "INFO", s.HandlerStatus().LoggerLevel)
	})
}
