package logconfig

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"
)

// bootstrap reports diagnostics that occur before the configured logger can
// carry them, e.g. an unreadable settings file during construction.
var bootstrap = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	NoColor:    true,
	TimeFormat: timestampLayout,
}).With().Timestamp().Logger()

// fileSettings mirrors the JSON settings file. Pointer fields distinguish an
// absent key from an explicit zero value: absent keys leave the corresponding
// Options field untouched.
type fileSettings struct {
	LogFile           *string `json:"log_file"`
	LogLevel          *string `json:"log_level"`
	FileLogLevel      *string `json:"file_log_level"`
	SyslogLogLevel    *string `json:"syslog_log_level"`
	ConsoleLogLevel   *string `json:"console_log_level"`
	SyslogFacility    *string `json:"syslog_facility"`
	UseFileLogging    *bool   `json:"use_file_logging"`
	UseSyslogLogging  *bool   `json:"use_syslog_logging"`
	UseConsoleLogging *bool   `json:"use_console_logging"`
}

// loadSettings overlays opts with values from the JSON file at path. Failure
// to read or parse the file is never fatal: a warning goes to the bootstrap
// channel and opts is left exactly as it was.
func loadSettings(path string, opts *Options) {
	data, err := os.ReadFile(path)
	if err != nil {
		bootstrap.Warn().Err(err).Str("config_file", path).Msg("Failed to load settings file")
		return
	}

	var fs fileSettings
	if err := json.Unmarshal(data, &fs); err != nil {
		bootstrap.Warn().Err(err).Str("config_file", path).Msg("Failed to parse settings file")
		return
	}

	if fs.LogFile != nil {
		opts.LogFile = *fs.LogFile
	}
	if fs.LogLevel != nil {
		opts.LogLevel = *fs.LogLevel
	}
	if fs.FileLogLevel != nil {
		opts.FileLogLevel = *fs.FileLogLevel
	}
	if fs.SyslogLogLevel != nil {
		opts.SyslogLogLevel = *fs.SyslogLogLevel
	}
	if fs.ConsoleLogLevel != nil {
		opts.ConsoleLogLevel = *fs.ConsoleLogLevel
	}
	if fs.SyslogFacility != nil {
		opts.SyslogFacility = *fs.SyslogFacility
	}
	if fs.UseFileLogging != nil {
		opts.UseFileLogging = *fs.UseFileLogging
	}
	if fs.UseSyslogLogging != nil {
		opts.UseSyslogLogging = *fs.UseSyslogLogging
	}
	if fs.UseConsoleLogging != nil {
		opts.UseConsoleLogging = *fs.UseConsoleLogging
	}
}
