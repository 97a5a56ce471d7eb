package logger

import (
	"io"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

type Fields map[string]interface{}

// Logger is a thin wrapper around zerolog.Logger so callers don't depend on
// zerolog directly.
type Logger struct {
	z zerolog.Logger
}

// NewConsole creates a ConsoleWriter-backed logger. When color is true the
// console writer emits ANSI colors. Time format is "3:04PM".
func NewConsole(out io.Writer, level Level, color bool) *Logger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "3:04PM", NoColor: !color}
	z := zerolog.New(cw).With().Timestamp().Logger().Level(level)
	return &Logger{z: z}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{z: zerolog.Nop()}
}

var std = zerolog.Nop()

// SetStd replaces the package logger used by the wrapper functions below.
func SetStd(l *Logger) {
	if l == nil {
		std = zerolog.Nop()
		return
	}
	std = l.z
}

func Debug(msg string, f Fields) { emit(std.Debug(), msg, f) }
func Info(msg string, f Fields)  { emit(std.Info(), msg, f) }
func Warn(msg string, f Fields)  { emit(std.Warn(), msg, f) }
func Error(msg string, f Fields) { emit(std.Error(), msg, f) }

func (l *Logger) Debug(msg string, f Fields) { emit(l.z.Debug(), msg, f) }
func (l *Logger) Info(msg string, f Fields)  { emit(l.z.Info(), msg, f) }
func (l *Logger) Warn(msg string, f Fields)  { emit(l.z.Warn(), msg, f) }
func (l *Logger) Error(msg string, f Fields) { emit(l.z.Error(), msg, f) }

func emit(e *zerolog.Event, msg string, f Fields) {
	if f != nil {
		e = e.Fields(map[string]interface{}(f))
	}
	e.Msg(msg)
}
