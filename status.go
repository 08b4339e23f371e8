package logconfig

// SinkStatus reports one sink's desired flag and effective level. Level is
// "N/A" whenever the sink handle is absent, regardless of the flag. A Service
// that shares a logger whose sinks another Service attached reports its
// requested flags with no handles, so callers must check both fields.
type SinkStatus struct {
	Enabled bool
	Level   string
}

// Status is a point-in-time snapshot of the three sinks and the logger-wide
// level.
type Status struct {
	File        SinkStatus
	Syslog      SinkStatus
	Console     SinkStatus
	LoggerLevel string
}

// HandlerStatus reports the current sink and level state. It is a pure read.
func (s *Service) HandlerStatus() Status {
	st := Status{
		File:        SinkStatus{Enabled: s.fileEnabled, Level: levelNA},
		Syslog:      SinkStatus{Enabled: s.syslogEnabled, Level: levelNA},
		Console:     SinkStatus{Enabled: s.consoleEnabled, Level: levelNA},
		LoggerLevel: s.logLevel.String(),
	}
	if s.fileSink != nil {
		st.File.Level = s.fileLevel.String()
	}
	if s.syslogSink != nil {
		st.Syslog.Level = s.syslogLevel.String()
	}
	if s.consoleSink != nil {
		st.Console.Level = s.consoleLevel.String()
	}
	return st
}
