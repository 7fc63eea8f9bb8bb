package main

import (
	"billremind/internal/app/deps"
	appservices "billremind/internal/app/services"
	"billremind/internal/core/domain/logging"
	rundailybilling "billremind/internal/core/services/run_daily_billing"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
)

// In-process alternative to an external cron hitting the HTTP run
// endpoint. Deploy one or the other, not both.
func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := appservices.InitServices(deps)

	cronEngine := cron.New()
	_, err := cronEngine.AddFunc(deps.Config.DailyCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		log.Info(ctx, "Launching daily billing run.")
		result, err := services.RunDailyBilling.Run(ctx, rundailybilling.Input{})
		if err != nil {
			log.Error(ctx, "Daily billing run returned an error.", logging.Entry("err", err))
			return
		}
		log.Info(
			ctx,
			"Daily billing run completed.",
			logging.Entry("skipped", result.Skipped),
			logging.Entry("rolledCount", result.RolledCount),
			logging.Entry("notifiedCount", result.NotifiedCount),
			logging.Entry("failedCount", result.FailedCount),
		)
	})
	if err != nil {
		log.Error(
			context.Background(),
			"Could not register the daily billing cron job.",
			logging.Entry("spec", deps.Config.DailyCronSpec),
			logging.Entry("err", err),
		)
		panic(err)
	}

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting daily billing cron runner.",
		logging.Entry("spec", deps.Config.DailyCronSpec),
	)
	cronEngine.Start()

	<-stopCh
	log.Info(context.Background(), "Stopping daily billing cron runner.")
	<-cronEngine.Stop().Done()
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
