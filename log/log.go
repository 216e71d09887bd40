// Package log is a thin wrapper over log/slog. Loggers write JSON to a rotating file, or text to
// stderr. A nil *Logger is usable: debug and info messages are dropped, warnings and errors go to
// the default slog logger.
package log

import(
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	*slog.Logger
	LogFile  string // empty if logging to stderr
	Start    time.Time
}

// {{{ New

// New returns a logger at the given level (debug, info, warn, error). If dir is non-empty, logs
// go to dir/uasfix.slog, rotated at 32MB.
func New(level string, dir string) *Logger {
	lvl,err := ParseLevel(level)
	if err != nil { fmt.Fprintf(os.Stderr, "%v; using info\n", err) }

	var l *Logger
	if dir == "" {
		l = NewWriter(os.Stderr, lvl)
	} else {
		w := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "uasfix.slog"),
			MaxSize:    32, // MB
			MaxBackups: 3,
			Compress:   true,
		}
		l = &Logger{
			Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})),
			LogFile: w.Filename,
			Start: time.Now(),
		}
	}

	l.Info("logging started", slog.String("level", lvl.String()),
		slog.String("GOOS", runtime.GOOS), slog.String("GOARCH", runtime.GOARCH))

	return l
}

// NewWriter logs text to the writer.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		Start: time.Now(),
	}
}

// }}}
// {{{ ParseLevel

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":        return slog.LevelDebug, nil
	case "info", "":     return slog.LevelInfo, nil
	case "warn":         return slog.LevelWarn, nil
	case "error":        return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%q: invalid log level", level)
}

// }}}
// {{{ Debug, Info, Warn, Error

func (l *Logger)enabled(lvl slog.Level) bool {
	return l != nil && l.Logger != nil && l.Logger.Enabled(context.Background(), lvl)
}

func (l *Logger)Debug(msg string, args ...any) {
	if l.enabled(slog.LevelDebug) { l.Logger.Debug(msg, args...) }
}
func (l *Logger)Debugf(msg string, args ...any) {
	if l.enabled(slog.LevelDebug) { l.Logger.Debug(fmt.Sprintf(msg, args...)) }
}

func (l *Logger)Info(msg string, args ...any) {
	if l.enabled(slog.LevelInfo) { l.Logger.Info(msg, args...) }
}
func (l *Logger)Infof(msg string, args ...any) {
	if l.enabled(slog.LevelInfo) { l.Logger.Info(fmt.Sprintf(msg, args...)) }
}

func (l *Logger)Warn(msg string, args ...any) {
	if l == nil || l.Logger == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}
func (l *Logger)Warnf(msg string, args ...any) { l.Warn(fmt.Sprintf(msg, args...)) }

func (l *Logger)Error(msg string, args ...any) {
	if l == nil || l.Logger == nil {
		slog.Error(msg, args...)
	} else {
		l.Logger.Error(msg, args...)
	}
}
func (l *Logger)Errorf(msg string, args ...any) { l.Error(fmt.Sprintf(msg, args...)) }

// }}}
// {{{ Fatalf

// Fatalf logs at error level, echoes to stderr, and exits.
func (l *Logger)Fatalf(msg string, args ...any) {
	s := fmt.Sprintf(msg, args...)
	l.Error(s)
	if l != nil && l.LogFile != "" { fmt.Fprintln(os.Stderr, s) }
	os.Exit(1)
}

// }}}

func (l *Logger)With(args ...any) *Logger {
	if l == nil || l.Logger == nil { return l }
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		Start:   l.Start,
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
