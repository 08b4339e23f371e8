package logconfig

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Service owns a named shared logger, up to three sink handles, and the
// desired-state flags and levels governing them. A sink handle is non-nil
// exactly when its flag is true and creation succeeded; syslog creation may
// fail without failing construction.
//
// Mutating methods must not be called concurrently; see the package doc.
type Service struct {
	name           string
	logFile        string
	syslogFacility string

	fileEnabled    bool
	syslogEnabled  bool
	consoleEnabled bool

	logLevel     Level
	fileLevel    Level
	syslogLevel  Level
	consoleLevel Level

	fileSink    *sinkHandle
	syslogSink  *sinkHandle
	consoleSink *sinkHandle

	shared *sharedLogger

	// consoleOut is os.Stderr in production; tests substitute a buffer.
	consoleOut io.Writer
}

// New builds a Service from opts against the package-wide registry and
// returns it ready to log. See NewWithRegistry for an injected registry.
func New(opts Options) (*Service, error) {
	return newService(opts, defaultRegistry, os.Stderr)
}

// NewWithRegistry is New with an explicit registry, so independent logger
// namespaces (and tests) do not share process-wide state.
func NewWithRegistry(opts Options, reg *Registry) (*Service, error) {
	return newService(opts, reg, os.Stderr)
}

func newService(opts Options, reg *Registry, consoleOut io.Writer) (*Service, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	if opts.ConfigFile != emptyString {
		loadSettings(opts.ConfigFile, &opts)
	}

	s := &Service{
		name:           opts.Name,
		logFile:        opts.LogFile,
		syslogFacility: opts.SyslogFacility,
		fileEnabled:    opts.UseFileLogging,
		syslogEnabled:  opts.UseSyslogLogging,
		consoleEnabled: opts.UseConsoleLogging,
		consoleOut:     consoleOut,
	}

	s.logLevel = ParseLevel(opts.LogLevel)
	s.fileLevel = s.logLevel
	if opts.FileLogLevel != emptyString {
		s.fileLevel = ParseLevel(opts.FileLogLevel)
	}
	s.consoleLevel = s.logLevel
	if opts.ConsoleLogLevel != emptyString {
		s.consoleLevel = ParseLevel(opts.ConsoleLogLevel)
	}
	s.syslogLevel = s.logLevel
	if opts.SyslogLogLevel != emptyString {
		s.syslogLevel = ParseLevel(opts.SyslogLogLevel)
	}
	// The syslog sink never runs below INFO, even with an explicit override.
	s.syslogLevel = maxLevel(s.syslogLevel, LevelInfo)

	s.shared = reg.logger(s.name)
	s.shared.setLevel(s.logLevel)

	// Reuse guard: a logger requested under an existing name keeps the sink
	// set it already has; this Service then holds no sink handles of its own.
	if s.shared.sinkCount() == 0 {
		if err := s.attachInitialSinks(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Service) attachInitialSinks() error {
	if s.fileEnabled {
		h, err := newFileSink(s.logFile, s.fileLevel)
		if err != nil {
			return err
		}
		s.fileSink = h
		s.shared.attach(h.filtered)
	}

	if s.syslogEnabled {
		h, err := newSyslogSink(s.syslogFacility, s.name, s.syslogLevel)
		if err != nil {
			// The logger is valid even with no sink attached yet; the
			// warning simply produces no output in that case.
			s.shared.Logger().Warn().Err(err).Msg("Failed to configure syslog sink")
			s.syslogEnabled = false
		} else {
			s.syslogSink = h
			s.shared.attach(h.filtered)
		}
	}

	if s.consoleEnabled {
		s.consoleSink = newConsoleSink(s.consoleOut, s.consoleLevel)
		s.shared.attach(s.consoleSink.filtered)
	}

	return nil
}

// Logger returns the shared logger. The handle stays valid across enable,
// disable, and level changes. On a nil or unconstructed Service it returns a
// no-op logger.
func (s *Service) Logger() *zerolog.Logger {
	if s == nil || s.shared == nil {
		l := zerolog.Nop()
		return &l
	}
	return s.shared.Logger()
}

// constructed reports whether s came out of a successful constructor. Like
// Logger and the printf helpers, the mutating operations no-op otherwise.
func (s *Service) constructed() bool {
	return s != nil && s.shared != nil
}

// SetLogLevel changes the logger-wide level and propagates it to every
// attached sink. The syslog sink receives max(level, INFO).
func (s *Service) SetLogLevel(level string) {
	if !s.constructed() {
		return
	}
	lvl := ParseLevel(level)
	s.logLevel = lvl
	s.shared.setLevel(lvl)

	if s.fileSink != nil {
		s.fileLevel = lvl
		s.fileSink.setLevel(lvl)
	}
	if s.syslogSink != nil {
		s.syslogLevel = maxLevel(lvl, LevelInfo)
		s.syslogSink.setLevel(s.syslogLevel)
	}
	if s.consoleSink != nil {
		s.consoleLevel = lvl
		s.consoleSink.setLevel(lvl)
	}

	s.shared.Logger().Info().Str("level", lvl.String()).Msg("Log level changed for logger and all sinks")
}

// SetFileLogLevel changes the file sink's level. A warning is emitted and
// nothing changes when the sink is not attached.
func (s *Service) SetFileLogLevel(level string) {
	if !s.constructed() {
		return
	}
	if !s.fileEnabled || s.fileSink == nil {
		s.shared.Logger().Warn().Msg("File sink is not enabled; cannot change log level")
		return
	}
	lvl := ParseLevel(level)
	s.fileLevel = lvl
	s.fileSink.setLevel(lvl)
	s.shared.Logger().Info().Str("level", lvl.String()).Msg("File sink log level changed")
}

// SetSyslogLogLevel changes the syslog sink's level, floored at INFO.
func (s *Service) SetSyslogLogLevel(level string) {
	if !s.constructed() {
		return
	}
	if !s.syslogEnabled || s.syslogSink == nil {
		s.shared.Logger().Warn().Msg("Syslog sink is not enabled; cannot change log level")
		return
	}
	lvl := maxLevel(ParseLevel(level), LevelInfo)
	s.syslogLevel = lvl
	s.syslogSink.setLevel(lvl)
	s.shared.Logger().Info().Str("level", lvl.String()).Msg("Syslog sink log level changed")
}

// SetConsoleLogLevel changes the console sink's level.
func (s *Service) SetConsoleLogLevel(level string) {
	if !s.constructed() {
		return
	}
	if !s.consoleEnabled || s.consoleSink == nil {
		s.shared.Logger().Warn().Msg("Console sink is not enabled; cannot change log level")
		return
	}
	lvl := ParseLevel(level)
	s.consoleLevel = lvl
	s.consoleSink.setLevel(lvl)
	s.shared.Logger().Info().Str("level", lvl.String()).Msg("Console sink log level changed")
}

// EnableFileLogging attaches the rotating file sink at its last-known level.
// No-op when already enabled.
func (s *Service) EnableFileLogging() {
	if !s.constructed() || s.fileEnabled {
		return
	}
	h, err := newFileSink(s.logFile, s.fileLevel)
	if err != nil {
		s.shared.Logger().Warn().Err(err).Msg("Failed to enable file sink")
		return
	}
	s.fileSink = h
	s.shared.attach(h.filtered)
	s.fileEnabled = true
	s.shared.Logger().Info().Msg("File logging enabled")
}

// DisableFileLogging detaches and closes the file sink. No-op when already
// disabled.
func (s *Service) DisableFileLogging() {
	if !s.constructed() || !s.fileEnabled || s.fileSink == nil {
		return
	}
	s.detachSink(s.fileSink, "File logging disabled")
	s.fileSink = nil
	s.fileEnabled = false
}

// EnableSyslogLogging attaches the syslog sink at its last-known level. On a
// host without a syslog transport a warning is emitted and the sink stays
// disabled. No-op when already enabled.
func (s *Service) EnableSyslogLogging() {
	if !s.constructed() || s.syslogEnabled {
		return
	}
	h, err := newSyslogSink(s.syslogFacility, s.name, s.syslogLevel)
	if err != nil {
		s.shared.Logger().Warn().Err(err).Msg("Failed to enable syslog sink")
		return
	}
	s.syslogSink = h
	s.shared.attach(h.filtered)
	s.syslogEnabled = true
	s.shared.Logger().Info().Msg("Syslog logging enabled")
}

// DisableSyslogLogging detaches and closes the syslog sink. No-op when
// already disabled.
func (s *Service) DisableSyslogLogging() {
	if !s.constructed() || !s.syslogEnabled || s.syslogSink == nil {
		return
	}
	s.detachSink(s.syslogSink, "Syslog logging disabled")
	s.syslogSink = nil
	s.syslogEnabled = false
}

// EnableConsoleLogging attaches the console sink at its last-known level.
// No-op when already enabled.
func (s *Service) EnableConsoleLogging() {
	if !s.constructed() || s.consoleEnabled {
		return
	}
	s.consoleSink = newConsoleSink(s.consoleOut, s.consoleLevel)
	s.shared.attach(s.consoleSink.filtered)
	s.consoleEnabled = true
	s.shared.Logger().Info().Msg("Console logging enabled")
}

// DisableConsoleLogging detaches the console sink. No-op when already
// disabled.
func (s *Service) DisableConsoleLogging() {
	if !s.constructed() || !s.consoleEnabled || s.consoleSink == nil {
		return
	}
	s.detachSink(s.consoleSink, "Console logging disabled")
	s.consoleSink = nil
	s.consoleEnabled = false
}

// detachSink removes h from the shared logger and releases its resource.
// When h is the only attached output the confirmation record is emitted
// before detaching, so the shutdown of the last sink is still observable;
// otherwise it goes through the remaining sinks afterwards. Detach and close
// always complete before the caller clears the flag.
func (s *Service) detachSink(h *sinkHandle, msg string) {
	last := s.shared.sinkCount() == 1
	if last {
		s.shared.Logger().Info().Msg(msg)
	}
	s.shared.detach(h.filtered)
	if err := h.Close(); err != nil {
		s.shared.Logger().Warn().Err(err).Msg("Failed to close sink")
	}
	if !last {
		s.shared.Logger().Info().Msg(msg)
	}
}

// Close detaches and releases every sink this Service attached. It is safe
// to call more than once; the shared logger itself stays usable.
func (s *Service) Close() error {
	if s == nil || s.shared == nil {
		return nil
	}

	var firstErr error
	release := func(h *sinkHandle) {
		s.shared.detach(h.filtered)
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if s.fileSink != nil {
		release(s.fileSink)
		s.fileSink = nil
		s.fileEnabled = false
	}
	if s.syslogSink != nil {
		release(s.syslogSink)
		s.syslogSink = nil
		s.syslogEnabled = false
	}
	if s.consoleSink != nil {
		release(s.consoleSink)
		s.consoleSink = nil
		s.consoleEnabled = false
	}

	return firstErr
}
