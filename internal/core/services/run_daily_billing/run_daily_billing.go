package rundailybilling

import (
	e "billremind/internal/core/domain/errors"
	"billremind/internal/core/domain/lock"
	"billremind/internal/core/domain/logging"
	"billremind/internal/core/services"
	rollbillingcycles "billremind/internal/core/services/roll_billing_cycles"
	schedulereminders "billremind/internal/core/services/schedule_reminders"
	"context"
	"time"
)

const (
	LockKey = "billing:daily-run"
	LockTTL = 10 * time.Minute
)

type Input struct{}

type Result struct {
	// Skipped is set when another instance holds the leader lock.
	Skipped       bool
	RolledCount   int
	NotifiedCount int
	SkippedCount  int
	FailedCount   int
}

// service is the engine's single entrypoint: one invocation rolls
// yesterday's billing cycles, immediately schedules notifications for
// the rolled reminders and then sweeps the rest of the pending window.
// Re-running it on the same day is a safe no-op.
type service struct {
	log       logging.Logger
	locker    lock.Locker
	roller    services.Service[rollbillingcycles.Input, rollbillingcycles.Result]
	scheduler services.Service[schedulereminders.Input, schedulereminders.Result]
}

func New(
	log logging.Logger,
	locker lock.Locker,
	roller services.Service[rollbillingcycles.Input, rollbillingcycles.Result],
	scheduler services.Service[schedulereminders.Input, schedulereminders.Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if locker == nil {
		panic(e.NewNilArgumentError("locker"))
	}
	if roller == nil {
		panic(e.NewNilArgumentError("roller"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	return &service{log: log, locker: locker, roller: roller, scheduler: scheduler}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	acquired, err := s.locker.Acquire(ctx, LockKey, LockTTL)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("lockKey", LockKey))
		return result, err
	}
	if !acquired {
		s.log.Info(ctx, "Daily billing lock is held elsewhere, skipping run.")
		result.Skipped = true
		return result, nil
	}
	defer func() {
		if err := s.locker.Release(ctx, LockKey); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("lockKey", LockKey))
		}
	}()

	rolled, err := s.roller.Run(ctx, rollbillingcycles.Input{})
	if err != nil {
		return result, err
	}
	result.RolledCount = len(rolled.Rolled)
	result.FailedCount += rolled.FailedCount

	if len(rolled.Rolled) > 0 {
		scheduled, err := s.scheduler.Run(ctx, schedulereminders.Input{Reminders: rolled.Rolled})
		if err != nil {
			return result, err
		}
		result.accumulate(scheduled)
	}

	swept, err := s.scheduler.Run(ctx, schedulereminders.Input{})
	if err != nil {
		return result, err
	}
	result.accumulate(swept)

	s.log.Info(
		ctx,
		"Daily billing run finished.",
		logging.Entry("rolledCount", result.RolledCount),
		logging.Entry("notifiedCount", result.NotifiedCount),
		logging.Entry("skippedCount", result.SkippedCount),
		logging.Entry("failedCount", result.FailedCount),
	)
	return result, nil
}

func (r *Result) accumulate(scheduled schedulereminders.Result) {
	r.NotifiedCount += len(scheduled.Notified)
	r.SkippedCount += scheduled.SkippedCount
	r.FailedCount += scheduled.FailedCount
}
