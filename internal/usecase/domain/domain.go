// Package domain contains application usecases orchestrating the core
// business logic.
package domain

import (
	"context"
	"time"

	"github.com/Vedant634/flowdesk-project/internal/advisor"
	"github.com/Vedant634/flowdesk-project/internal/events"
	"github.com/Vedant634/flowdesk-project/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	advisor advisor.Advisor
	sink    events.Sink
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	adv advisor.Advisor,
	sink events.Sink,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		advisor: adv,
		sink:    sink,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// emit hands an event to the sink without letting failures or latency reach
// the caller. The operation that triggered the event has already committed.
func (u *Usecase) emit(ev events.Event) {
	ev.OccurredAt = time.Now()
	go func() {
		ctx, cancel := withTimeout(context.WithoutCancel(u.ctx), u.timeout)
		defer cancel()
		if err := u.sink.Emit(ctx, ev); err != nil {
			u.log.Warnw("event emit failed", "kind", ev.Kind, "task_id", ev.TaskID, "error", err)
		}
	}()
}
