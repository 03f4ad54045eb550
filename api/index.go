package handler

import (
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	hotelHTTP "hotel/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	server *hotelHTTP.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		var cleanup func()
		server, cleanup = di.InitializeService()

		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

		go func() {
			releaseOnSignal(signals, cleanup)
			os.Exit(0)
		}()
	})

	server.ServeHTTP(w, r)
}

// releaseOnSignal runs cleanup once the runtime asks the instance to stop.
func releaseOnSignal(signals <-chan os.Signal, cleanup func()) {
	sig := <-signals

	log.Info().Str("signal", sig.String()).Msg("Releasing infrastructure before shutdown.")

	cleanup()
}
