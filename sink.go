package logconfig

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// sinkHandle is one attached output: the level-filtered writer sitting in the
// shared logger's sink set, plus the closer releasing its resource.
type sinkHandle struct {
	filtered *zerolog.FilteredLevelWriter
	closer   io.Closer
}

func (h *sinkHandle) setLevel(lvl Level) {
	h.filtered.Level = lvl.zerologLevel()
}

func (h *sinkHandle) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}

// newFileSink builds the rotating file sink. lumberjack defers creating the
// backing file until the first record is written; only the parent directory
// is created here.
func newFileSink(path string, lvl Level) (*sinkHandle, error) {
	const op errors.Op = "logconfig.newFileSink"

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgLogDir)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
	}

	return &sinkHandle{
		filtered: &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: newFormatWriter(lj)},
			Level:  lvl.zerologLevel(),
		},
		closer: lj,
	}, nil
}

// newConsoleSink writes formatted records to out, os.Stderr in production.
func newConsoleSink(out io.Writer, lvl Level) *sinkHandle {
	return &sinkHandle{
		filtered: &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: newFormatWriter(out)},
			Level:  lvl.zerologLevel(),
		},
	}
}
