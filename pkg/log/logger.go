package log

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

type Fields map[string]interface{}

// New returns the process logger. Local runs get a console writer and
// debug level, everything else emits JSON at info.
func New(env string) Logger {
	level := zerolog.InfoLevel
	if env == "local" {
		level = zerolog.DebugLevel
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return log.Level(level)
}

func With(logger Logger, fields Fields) Logger {
	l := logger
	for k, v := range fields {
		l = l.With().Interface(k, v).Logger()
	}
	return l
}
