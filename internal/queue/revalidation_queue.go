package queue

import (
	"context"
	"time"
)

// Notification asks for the cached rendering of Path to be invalidated.
type Notification struct {
	Path        string    `json:"path"`
	RequestedAt time.Time `json:"requested_at"`
}

type Delivery struct {
	Data *Notification
	Ack  func()
	Nack func(requeue bool)
}

type RevalidationQueue interface {
	Publish(ctx context.Context, n *Notification) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemoryRevalidationQueueImpl is a buffered-channel queue for single-process
// deployments and tests.
type MemoryRevalidationQueueImpl struct {
	ch chan *Notification
}

func NewMemoryRevalidationQueue(bufferSize int) RevalidationQueue {
	return &MemoryRevalidationQueueImpl{
		ch: make(chan *Notification, bufferSize),
	}
}

func (q *MemoryRevalidationQueueImpl) Publish(ctx context.Context, n *Notification) error {
	select {
	case q.ch <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryRevalidationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: n,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- n
						}
					},
				}
			}
		}
	}()

	return out, nil
}
