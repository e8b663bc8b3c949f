package worker

import (
	"context"

	"evently/internal/cache"
	"evently/internal/queue"
	"evently/pkg/logger"

	"go.uber.org/zap"
)

type RevalidationWorker interface {
	Start(ctx context.Context) error
}

// RevalidationWorkerImpl drains the revalidation queue and drops the
// cached rendering for each notified path.
type RevalidationWorkerImpl struct {
	pageCache cache.PageCache
	queue     queue.RevalidationQueue
}

func NewRevalidationWorker(pageCache cache.PageCache, queue queue.RevalidationQueue) RevalidationWorker {
	return &RevalidationWorkerImpl{
		pageCache: pageCache,
		queue:     queue,
	}
}

func (w *RevalidationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			err := w.pageCache.Invalidate(ctx, msg.Data.Path)
			if err != nil {
				logger.WithComponent("worker").Warn("invalidate failed, requeueing",
					zap.String("path", msg.Data.Path), zap.Error(err))
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}
