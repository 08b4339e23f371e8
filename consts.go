package logconfig

const (
	emptyString = ""

	// Record field keys shared by the formatter and the enrichment hook.
	pidFieldName    = "pid"
	loggerFieldName = "logger"

	// timestampLayout is the record timestamp format for every sink.
	timestampLayout = "2006-01-02 15:04:05"

	// File sink rotation parameters.
	fileMaxSizeMB  = 5
	fileMaxBackups = 5

	// levelNA is reported for a sink whose handle is absent.
	levelNA = "N/A"

	defaultLevelName = "debug"
	defaultFacility  = "user"
)

const (
	errMsgOptionsInvalid = "Logging options are invalid."
	errMsgLogDir         = "Failed to create log directory."
	errMsgSyslogConnect  = "Failed to connect syslog sink."
)
