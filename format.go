package logconfig

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// processHook stamps each record with the current process id before it
// reaches any sink.
type processHook struct{}

func (processHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Int(pidFieldName, os.Getpid())
}

// displayLevel maps zerolog's wire level names onto the severity names used
// in the record format.
func displayLevel(i interface{}) string {
	switch fmt.Sprint(i) {
	case "warn":
		return "WARNING"
	case "fatal", "panic":
		return "CRITICAL"
	default:
		return strings.ToUpper(fmt.Sprint(i))
	}
}

// newFormatWriter renders records for every sink as
//
//	YYYY-MM-DD HH:MM:SS [LEVEL] pid=<pid> <name>: <message>
func newFormatWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: timestampLayout,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			pidFieldName,
			loggerFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{pidFieldName, loggerFieldName},
		FormatLevel: func(i interface{}) string {
			return "[" + displayLevel(i) + "]"
		},
		FormatPartValueByName: func(i interface{}, name string) string {
			switch name {
			case pidFieldName:
				return "pid=" + fmt.Sprint(i)
			case loggerFieldName:
				return fmt.Sprint(i) + ":"
			}
			return fmt.Sprint(i)
		},
	}
}
