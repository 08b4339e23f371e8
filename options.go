package logconfig

// Options configures a Service. Name identifies the shared logger; LogFile is
// the destination for the rotating file sink. Level names accept the five
// recognized severities case-insensitively; anything else resolves to DEBUG.
type Options struct {
	Name    string `validate:"required"`
	LogFile string `validate:"required"`

	// LogLevel is the logger-wide level. Per-sink levels default to it when
	// left empty; the syslog level is additionally floored at INFO.
	LogLevel        string
	FileLogLevel    string
	SyslogLogLevel  string
	ConsoleLogLevel string

	// SyslogFacility names the syslog facility, e.g. "user", "daemon",
	// "local0".."local7". Unknown names fall back to "user".
	SyslogFacility string

	UseFileLogging    bool
	UseSyslogLogging  bool
	UseConsoleLogging bool

	// ConfigFile optionally points at a JSON settings file whose keys
	// override the fields above before any sink is built. A missing or
	// malformed file is reported on stderr and otherwise ignored.
	ConfigFile string
}

// DefaultOptions returns Options with all three sinks enabled, level "debug",
// and the "user" syslog facility.
func DefaultOptions(name, logFile string) Options {
	return Options{
		Name:              name,
		LogFile:           logFile,
		LogLevel:          defaultLevelName,
		SyslogFacility:    defaultFacility,
		UseFileLogging:    true,
		UseSyslogLogging:  true,
		UseConsoleLogging: true,
	}
}
