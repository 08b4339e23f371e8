package logconfig

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Registry maps logger names to process-wide shared logger state. Services
// constructed with the same name through the same Registry attach to the same
// underlying logger; whichever Service attached sinks first owns the sink set
// until another one mutates it.
type Registry struct {
	loggers map[string]*sharedLogger
}

// NewRegistry returns an empty registry. Like the Service itself it is not
// safe for concurrent mutation.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*sharedLogger)}
}

// defaultRegistry backs New; tests inject an isolated one via NewWithRegistry.
var defaultRegistry = NewRegistry()

func (r *Registry) logger(name string) *sharedLogger {
	if sl, ok := r.loggers[name]; ok {
		return sl
	}
	sl := newSharedLogger(name)
	r.loggers[name] = sl
	return sl
}

// sharedLogger is the logger identified by a name. It is itself the writer
// the zerolog logger emits through, dispatching each record to the currently
// attached sinks, so logger handles handed out earlier observe sink
// attachment, detachment, and level changes as they happen.
type sharedLogger struct {
	name    string
	level   Level
	writers []*zerolog.FilteredLevelWriter
	logger  atomic.Pointer[zerolog.Logger]
}

func newSharedLogger(name string) *sharedLogger {
	sl := &sharedLogger{name: name}
	// The stored logger is built once, wide open. The effective threshold
	// lives in sl.level and is applied in WriteLevel, so every handle ever
	// handed out shares one level, raised or lowered.
	l := zerolog.New(sl).
		Level(zerolog.TraceLevel).
		Hook(processHook{}).
		With().
		Timestamp().
		Str(loggerFieldName, sl.name).
		Logger()
	sl.logger.Store(&l)
	return sl
}

func (sl *sharedLogger) Logger() *zerolog.Logger {
	return sl.logger.Load()
}

func (sl *sharedLogger) sinkCount() int {
	return len(sl.writers)
}

func (sl *sharedLogger) attach(w *zerolog.FilteredLevelWriter) {
	sl.writers = append(sl.writers, w)
}

func (sl *sharedLogger) detach(w *zerolog.FilteredLevelWriter) {
	for i, attached := range sl.writers {
		if attached == w {
			sl.writers = append(sl.writers[:i], sl.writers[i+1:]...)
			return
		}
	}
}

func (sl *sharedLogger) setLevel(lvl Level) {
	sl.level = lvl
}

// WriteLevel dispatches one record to every attached sink. The logger-wide
// threshold is enforced here, so handles retained from before a level change
// observe the new level in either direction. Zero attached sinks is valid;
// the record goes nowhere.
func (sl *sharedLogger) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < sl.level.zerologLevel() {
		return len(p), nil
	}
	var firstErr error
	for _, w := range sl.writers {
		if _, err := w.WriteLevel(level, p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(p), firstErr
}

func (sl *sharedLogger) Write(p []byte) (int, error) {
	var firstErr error
	for _, w := range sl.writers {
		if _, err := w.Write(p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(p), firstErr
}
