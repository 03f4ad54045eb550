package di

import (
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"

	"github.com/rs/zerolog/log"
)

// provideKafka flushes pending reservation events when the application stops.
func provideKafka(cfg *config.Config, ot otel.Otel) (kafka.Client, func()) {
	client := kafka.New(cfg, ot)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka writers")
		}
	}
}
