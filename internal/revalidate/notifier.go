package revalidate

import (
	"context"
	"time"

	"evently/internal/queue"
)

// Notifier is the opaque "invalidate cached rendering of this path"
// signal services emit after a successful write.
type Notifier interface {
	Revalidate(ctx context.Context, path string) error
}

// QueueNotifier hands notifications to the revalidation queue; the worker
// performs the actual invalidation.
type QueueNotifier struct {
	queue queue.RevalidationQueue
}

func NewQueueNotifier(q queue.RevalidationQueue) *QueueNotifier {
	return &QueueNotifier{queue: q}
}

func (n *QueueNotifier) Revalidate(ctx context.Context, path string) error {
	return n.queue.Publish(ctx, &queue.Notification{
		Path:        path,
		RequestedAt: time.Now().UTC(),
	})
}

// Noop discards notifications; used when no cache layer is deployed.
type Noop struct{}

func (Noop) Revalidate(ctx context.Context, path string) error {
	return nil
}
