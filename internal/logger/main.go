// Package logger configures the global zerolog logger of randstring.
package logger

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter splits log output by level, see WriteLevel.
type LevelWriter struct {
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel writes p to the writer responsible for level l.
// Debug and info go to InfoWriter, error and above to ErrorWriter.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	if l == zerolog.Disabled {
		return 0, nil
	}

	switch {
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel:
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter
	}

	return w.Write(p) //nolint:wrapcheck
}

// Write sends level-less events to InfoWriter.
func (lw *LevelWriter) Write(p []byte) (int, error) {
	return lw.InfoWriter.Write(p) //nolint:wrapcheck
}

// Init configures the global logger from cfg.
// With neither console nor file output enabled, nothing is logged.
func Init(cfg Log) error {
	var (
		logLevel, err = zerolog.ParseLevel(cfg.LogLevel)
		writers       []io.Writer
		stack         bool
	)

	if err != nil {
		return errors.Wrapf(err, "loglevel %s is not supported", cfg.LogLevel)
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	if cfg.File.Enabled && cfg.File.Path == "" {
		return ErrLogPathIsEmpty
	}

	// error stacks are only worth their cost at trace level
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		stack = true
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	ph := NewPrometheusHook(cfg.ServiceName)

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		fw, err := newRollingFiles(cfg)
		if err != nil {
			return err
		}

		writers = append(writers, fw)
	}

	mw := zerolog.MultiLevelWriter(writers...)
	ctx := zerolog.New(mw).Hook(ph).With().Timestamp().Str("app", cfg.AppName)

	switch {
	case cfg.ReportCaller && stack:
		log.Logger = ctx.Stack().Caller().Logger()
	case cfg.ReportCaller:
		log.Logger = ctx.Caller().Logger()
	case stack:
		log.Logger = ctx.Stack().Logger()
	default:
		log.Logger = ctx.Logger()
	}

	return nil
}

// newRollingFiles returns a LevelWriter backed by one lumberjack logger per level group.
func newRollingFiles(cfg Log) (io.Writer, error) {
	if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil { //nolint:mnd
		return nil, errors.Wrapf(err, "can't create log directory %s", cfg.File.Path)
	}

	f := cfg.File

	return &LevelWriter{
		ErrorWriter: &lumberjack.Logger{
			Filename:   path.Join(f.Path, f.ErrorLog),
			MaxSize:    f.ErrorMaxSize,
			MaxAge:     f.ErrorMaxAge,
			MaxBackups: f.ErrorMaxBackups,
		},
		InfoWriter: &lumberjack.Logger{
			Filename:   path.Join(f.Path, f.InfoLog),
			MaxSize:    f.InfoMaxSize,
			MaxAge:     f.InfoMaxAge,
			MaxBackups: f.InfoMaxBackups,
		},
		TraceWriter: &lumberjack.Logger{
			Filename:   path.Join(f.Path, f.TraceLog),
			MaxSize:    f.TraceMaxSize,
			MaxAge:     f.TraceMaxAge,
			MaxBackups: f.TraceMaxBackups,
		},
		WarnWriter: &lumberjack.Logger{
			Filename:   path.Join(f.Path, f.WarnLog),
			MaxSize:    f.WarnMaxSize,
			MaxAge:     f.WarnMaxAge,
			MaxBackups: f.WarnMaxBackups,
		},
	}, nil
}

// NewConsoleWriter returns a LevelWriter sending every level to stderr.
// Stdout carries command results only.
func NewConsoleWriter(cfg Log) io.Writer {
	var out io.Writer = os.Stderr

	if cfg.Console.UseConsoleWriter {
		out = consoleWriter(os.Stderr, cfg.Console.NoColor)
	}

	return &LevelWriter{
		ErrorWriter: out,
		InfoWriter:  out,
		TraceWriter: out,
		WarnWriter:  out,
	}
}

func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: zerolog.TimeFieldFormat,
	}
}
