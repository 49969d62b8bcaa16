package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/randstring/internal/logger"
)

func TestInit_Output(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console writer without color",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true, NoColor: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "json trace with caller and stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := captureOutput(t, tc.cfg)

			if !tc.shouldHaveOutPut {
				assert.Empty(t, out)
				return
			}

			require.NotEmpty(t, out)

			if !tc.outPutIsJSON {
				return
			}

			for _, line := range strings.Split(out, "\n") {
				if line == "" {
					continue
				}

				var entry struct {
					Level   string `json:"level"`
					App     string `json:"app"`
					Message string `json:"message"`
				}

				require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
				assert.Equal(t, "test", entry.App)
				assert.NotEmpty(t, entry.Message)
			}
		})
	}
}

func TestInit_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     logger.Log
		wantErr error
	}{
		{
			name:    "missing service name",
			cfg:     logger.Log{LogLevel: "info", AppName: "test"},
			wantErr: logger.ErrServiceNameIsEmpty,
		},
		{
			name:    "missing app name",
			cfg:     logger.Log{LogLevel: "info", ServiceName: "test"},
			wantErr: logger.ErrAppNameIsEmpty,
		},
		{
			name: "file logging without path",
			cfg: logger.Log{
				LogLevel:    "info",
				AppName:     "test",
				ServiceName: "test",
				File:        logger.LogFile{Enabled: true},
			},
			wantErr: logger.ErrLogPathIsEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, logger.Init(tc.cfg), tc.wantErr)
		})
	}

	err := logger.Init(logger.Log{LogLevel: "loud", AppName: "test", ServiceName: "test"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestInit_RollingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")

	err := logger.Init(logger.Log{
		LogLevel:    "trace",
		AppName:     "test",
		ServiceName: "test",
		File: logger.LogFile{
			Enabled:  true,
			Path:     dir,
			ErrorLog: "error.log",
			InfoLog:  "info.log",
			TraceLog: "trace.log",
			WarnLog:  "warn.log",
		},
	})
	require.NoError(t, err)

	log.Info().Msg("info line")
	log.Warn().Msg("warn line")
	log.Error().Err(alwaysErrFunc()).Msg("error line")
	log.Trace().Msg("trace line")

	for file, line := range map[string]string{
		"info.log":  "info line",
		"warn.log":  "warn line",
		"error.log": "error line",
		"trace.log": "trace line",
	} {
		content, err := os.ReadFile(filepath.Join(dir, file))
		require.NoError(t, err)
		assert.Contains(t, string(content), line)
	}
}

func TestLevelWriter_Routing(t *testing.T) {
	var errBuf, infoBuf, traceBuf, warnBuf bytes.Buffer

	lw := &logger.LevelWriter{
		ErrorWriter: &errBuf,
		InfoWriter:  &infoBuf,
		TraceWriter: &traceBuf,
		WarnWriter:  &warnBuf,
	}

	for _, l := range []zerolog.Level{
		zerolog.TraceLevel, zerolog.DebugLevel, zerolog.InfoLevel,
		zerolog.WarnLevel, zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.Disabled,
	} {
		_, err := lw.WriteLevel(l, []byte(l.String()+"\n"))
		require.NoError(t, err)
	}

	assert.Equal(t, "trace\n", traceBuf.String())
	assert.Equal(t, "debug\ninfo\n", infoBuf.String())
	assert.Equal(t, "warn\n", warnBuf.String())
	assert.Equal(t, "error\nfatal\n", errBuf.String())
}

func TestInit_ConsoleKeepsStdoutClean(t *testing.T) {
	stdout := os.Stdout
	stderr := os.Stderr

	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = outW
	os.Stderr = errW

	initErr := logger.Init(logger.Log{
		LogLevel:    "debug",
		AppName:     "test",
		ServiceName: "test",
		Console:     logger.Console{Enabled: true},
	})

	log.Debug().Msg("debug line")
	log.Info().Msg("info line")

	os.Stdout = stdout
	os.Stderr = stderr

	_ = outW.Close()
	_ = errW.Close()

	outBytes, err := io.ReadAll(outR)
	require.NoError(t, err)

	errBytes, err := io.ReadAll(errR)
	require.NoError(t, err)

	require.NoError(t, initErr)
	assert.Empty(t, string(outBytes))
	assert.Contains(t, string(errBytes), "debug line")
	assert.Contains(t, string(errBytes), "info line")
}

func TestWriteMetrics(t *testing.T) {
	require.NoError(t, logger.Init(logger.Log{LogLevel: "info", AppName: "test", ServiceName: "test"}))
	log.Info().Msg("counted")

	file := filepath.Join(t.TempDir(), "randstring.prom")
	require.NoError(t, logger.WriteMetrics(file))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), `log_statements_total{level="info"`)
}

func alwaysErrFunc() error {
	return errors.New("a test error") //nolint:goerr113
}

func captureOutput(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	os.Stderr = w

	initErr := logger.Init(cfg)

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(alwaysErrFunc()).Msg("this err message should be seen...")
	log.Trace().Err(alwaysErrFunc()).Msg("this trace message should be seen...")

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer

		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr
	out := <-outC

	require.NoError(t, initErr)

	return out
}
