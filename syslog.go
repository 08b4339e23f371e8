package logconfig

import (
	"bytes"
	"log/syslog"
	"strings"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// facilities maps facility names onto syslog priorities.
var facilities = map[string]syslog.Priority{
	"kern":     syslog.LOG_KERN,
	"user":     syslog.LOG_USER,
	"mail":     syslog.LOG_MAIL,
	"daemon":   syslog.LOG_DAEMON,
	"auth":     syslog.LOG_AUTH,
	"syslog":   syslog.LOG_SYSLOG,
	"lpr":      syslog.LOG_LPR,
	"news":     syslog.LOG_NEWS,
	"uucp":     syslog.LOG_UUCP,
	"cron":     syslog.LOG_CRON,
	"authpriv": syslog.LOG_AUTHPRIV,
	"ftp":      syslog.LOG_FTP,
	"local0":   syslog.LOG_LOCAL0,
	"local1":   syslog.LOG_LOCAL1,
	"local2":   syslog.LOG_LOCAL2,
	"local3":   syslog.LOG_LOCAL3,
	"local4":   syslog.LOG_LOCAL4,
	"local5":   syslog.LOG_LOCAL5,
	"local6":   syslog.LOG_LOCAL6,
	"local7":   syslog.LOG_LOCAL7,
}

func facility(name string) syslog.Priority {
	if p, ok := facilities[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return syslog.LOG_USER
}

// syslogWriter forwards formatted records to the local syslog daemon at the
// severity of the originating record. It mirrors zerolog's SyslogLevelWriter
// but carries the shared text record format instead of raw JSON.
type syslogWriter struct {
	w  *syslog.Writer
	fw zerolog.ConsoleWriter

	// mu guards buf: logging may be concurrent even though sink
	// reconfiguration is not.
	mu  sync.Mutex
	buf bytes.Buffer
}

func newSyslogWriter(w *syslog.Writer) *syslogWriter {
	sw := &syslogWriter{w: w}
	sw.fw = newFormatWriter(&sw.buf)
	return sw
}

func (sw *syslogWriter) Write(p []byte) (int, error) {
	return sw.WriteLevel(zerolog.InfoLevel, p)
}

func (sw *syslogWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	sw.mu.Lock()
	sw.buf.Reset()
	if _, err := sw.fw.Write(p); err != nil {
		sw.mu.Unlock()
		return 0, err
	}
	msg := strings.TrimRight(sw.buf.String(), "\n")
	sw.mu.Unlock()

	var err error
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		err = sw.w.Debug(msg)
	case zerolog.WarnLevel:
		err = sw.w.Warning(msg)
	case zerolog.ErrorLevel:
		err = sw.w.Err(msg)
	case zerolog.FatalLevel, zerolog.PanicLevel:
		err = sw.w.Crit(msg)
	default:
		err = sw.w.Info(msg)
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// newSyslogSink connects the local syslog transport. Failure is expected on
// hosts without a syslog socket; the caller reports it and leaves the sink
// disabled.
func newSyslogSink(facilityName, tag string, lvl Level) (*sinkHandle, error) {
	const op errors.Op = "logconfig.newSyslogSink"

	w, err := syslog.New(facility(facilityName)|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgSyslogConnect)
	}

	return &sinkHandle{
		filtered: &zerolog.FilteredLevelWriter{
			Writer: newSyslogWriter(w),
			Level:  lvl.zerologLevel(),
		},
		closer: w,
	}, nil
}
