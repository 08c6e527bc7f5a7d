package logger

import (
	"io"
	"os"
	"petstay/config"
	"petstay/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var output io.Writer = os.Stdout

// SetOutput redirects every logger built afterwards.
func SetOutput(w io.Writer) {
	output = w
}

// InitLogger installs a console logger at trace level. It runs before config is
// loaded so config loading itself is logged.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies LOG_LEVEL. Outside development the console writer is swapped
// for JSON lines tagged with the app name so log shippers can parse them.
func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = zerolog.TraceLevel
	}

	if config.Server.Env != constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(output).With().Timestamp().Str("service", config.App.Name).Logger()
	}

	zerolog.SetGlobalLevel(level)

	log.Debug().Str("loglevel", level.String()).Str("env", config.Server.Env).Msg("Log level configured.")
}
