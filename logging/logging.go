package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func Setup(w io.Writer) {
	zerolog.TimeFieldFormat = "2006-01-02T15:04:05.000"
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = zerolog.New(w).With().Timestamp().Caller().Logger()
}

// SetLevel applies a named level (`debug`, `info`, ...) globally. Unknown or empty names leave the level unchanged.
func SetLevel(name string) {
	if name == "" {
		return
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		log.Warn().Msgf("Ignoring unknown log level [%s]", name)
		return
	}
	zerolog.SetGlobalLevel(level)
}
