package main

import (
	"os"

	"github.com/GlintPay/gsbc/logging"
	"github.com/rs/zerolog/log"
)

const serviceName = "gsbc"

func main() {
	logging.Setup(os.Stdout)

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Stack().Err(err).Msg("command failed")
	}
}
