package log

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It starts at warn level so sorting code
// stays silent unless SetLevel lowers it.
var Log *zap.Logger
var level zap.AtomicLevel

func init() {
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	l, err := build(level)
	if err != nil {
		log.Fatalln(err)
	}
	Log = l
}

func config(lvl zap.AtomicLevel) zap.Config {
	return zap.Config{
		Level:       lvl,
		Development: true,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			LevelKey:       "L",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			NameKey:        "N",
			StacktraceKey:  "stackTrace",
			MessageKey:     "msg",
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

func build(lvl zap.AtomicLevel) (*zap.Logger, error) {
	l, err := config(lvl).Build()
	if err != nil {
		return nil, err
	}
	return l.WithOptions(zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// New builds a console logger with its own level, independent of Log.
func New(l zapcore.Level) (*zap.Logger, error) {
	return build(zap.NewAtomicLevelAt(l))
}

// Named returns a child of Log, e.g. Named("qsort") for a Sorter's Config.Logger.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

func Nop() *zap.Logger {
	return zap.NewNop()
}

func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

func Level() zapcore.Level {
	return level.Level()
}
