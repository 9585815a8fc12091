package worker

import (
	"context"

	"bloglist-service/internal/metrics"
	"bloglist-service/internal/platform/logger"
)

const (
	KindCreated = "created"
	KindUpdated = "updated"
	KindDeleted = "deleted"
)

type BlogEvent struct {
	Kind   string
	BlogID string
	UserID string
}

// Invalidator drops derived data that a blog write made stale.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type EventWorker struct {
	Ch    <-chan BlogEvent
	log   *logger.Logger
	cache Invalidator
}

func NewEventWorker(ch <-chan BlogEvent, log *logger.Logger, cache Invalidator) *EventWorker {
	if log == nil {
		log = logger.Nop()
	}
	return &EventWorker{Ch: ch, log: log, cache: cache}
}

// Run handles events until ctx is cancelled or the channel is closed.
func (w *EventWorker) Run(ctx context.Context) {
	w.log.Info("event worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info("event worker stopped")
			return
		case ev, ok := <-w.Ch:
			if !ok {
				w.log.Info("event worker stopped", "reason", "channel closed")
				return
			}
			w.handle(ctx, ev)
		}
	}
}

func (w *EventWorker) handle(ctx context.Context, ev BlogEvent) {
	w.log.Debug("processing blog event", "kind", ev.Kind, "blog_id", ev.BlogID, "user_id", ev.UserID)
	metrics.IncBlogEvent(ev.Kind)
	if w.cache == nil {
		return
	}
	if err := w.cache.Invalidate(ctx); err != nil {
		w.log.Warn("stats cache invalidation failed", "kind", ev.Kind, "error", err)
	}
}
