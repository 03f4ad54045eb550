package logger

import (
	"io"
	"os"
	"time"

	"hotel/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(consoleWriter())
	log.Trace().Msg("Zerolog initialized.")
}

// AttachFileSink tees the global logger into a size-rotated JSON file when a path is configured.
// The returned closer is nil when no file sink was attached.
func AttachFileSink(config *config.Config) io.Closer {
	fileCfg := config.Server.LogFile
	if fileCfg.Path == "" {
		return nil
	}

	rotating := &lumberjack.Logger{
		Filename:   fileCfg.Path,
		MaxSize:    fileCfg.MaxSizeMB,
		MaxBackups: fileCfg.MaxBackups,
		MaxAge:     fileCfg.MaxAgeDays,
		LocalTime:  true,
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(consoleWriter(), rotating))
	log.Info().Str("path", fileCfg.Path).Msg("Log file sink attached.")

	return rotating
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
