package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

// Init configures the global logger. Format is "console" or "json".
func Init(level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if strings.ToLower(format) == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	Logger = zerolog.New(output).With().Timestamp().Logger()
	log.Logger = Logger
	return nil
}

func Info() *zerolog.Event  { return Logger.Info() }
func Debug() *zerolog.Event { return Logger.Debug() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }
func Fatal() *zerolog.Event { return Logger.Fatal() }
