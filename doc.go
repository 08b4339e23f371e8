// Package logconfig wires a named rs/zerolog logger to up to three output
// sinks (rotating file, syslog, console) with per-sink severity filtering,
// process-id enrichment, and runtime sink lifecycle control.
//
// Key features
//   - File sink via lumberjack: rotation at 5 MiB with 5 retained backups,
//     file creation deferred until the first record is written
//   - Syslog sink over the local transport with a configurable facility;
//     its level never drops below INFO
//   - Sinks can be enabled, disabled, and releveled while the logger is live
//   - Every record carries the current process id and the logger name
//   - Optional JSON settings file that overrides constructor defaults
//   - Loggers are shared by name through a registry: two Services built with
//     the same name attach to the same underlying logger
//
// Mutating operations (level changes, enable/disable) are not internally
// synchronized; a host application sharing one Service across goroutines must
// serialize those calls itself, including against in-flight logging. Logging
// calls alone may run concurrently, and a logger handle obtained once from
// Logger() observes later sink and level changes.
//
// The syslog sink uses the local system transport and is Linux-specific; on a
// host without a syslog socket the sink is left disabled and construction
// still succeeds.
//
// Typical usage
//
//	svc, err := logconfig.New(logconfig.DefaultOptions("myapp", "/var/log/myapp/app.log"))
//	if err != nil { panic(err) }
//	defer svc.Close()
//
//	svc.Logger().Info().Msg("program started")
//	svc.SetLogLevel("warning")
//	svc.DisableConsoleLogging()
package logconfig
