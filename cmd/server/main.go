package main

import (
	"billremind/internal/app/deps"
	appservices "billremind/internal/app/services"
	"billremind/internal/core/domain/logging"
	apphttp "billremind/internal/http"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := appservices.InitServices(deps)

	server := &http.Server{
		Addr:    deps.Config.HTTPAddress,
		Handler: apphttp.NewRouter(services),
	}

	stopCh, closeCh := createChannel()
	defer closeCh()

	go func() {
		log.Info(
			context.Background(),
			"Starting billing reminder HTTP server.",
			logging.Entry("address", deps.Config.HTTPAddress),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(context.Background(), "HTTP server failed.", logging.Entry("err", err))
			stopCh <- syscall.SIGTERM
		}
	}()

	<-stopCh
	log.Info(context.Background(), "Shutting down billing reminder HTTP server.")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error(context.Background(), "HTTP server shutdown failed.", logging.Entry("err", err))
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
