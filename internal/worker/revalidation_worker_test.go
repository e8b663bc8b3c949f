package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"evently/internal/queue"
	"evently/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageCacheStub records invalidated paths and can fail a set number of times.
type pageCacheStub struct {
	mu          sync.Mutex
	invalidated []string
	failures    int
}

func (s *pageCacheStub) Get(ctx context.Context, path string) (string, error) {
	return "", nil
}

func (s *pageCacheStub) Set(ctx context.Context, path string, rendered string, ttl time.Duration) error {
	return nil
}

func (s *pageCacheStub) Invalidate(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failures > 0 {
		s.failures--
		return errors.New("redis down")
	}
	s.invalidated = append(s.invalidated, path)
	return nil
}

func (s *pageCacheStub) paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.invalidated...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestRevalidationWorker(t *testing.T) {
	t.Run("invalidates each notified path", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewMemoryRevalidationQueue(10)
		stub := &pageCacheStub{}
		w := worker.NewRevalidationWorker(stub, q)

		require.NoError(t, w.Start(ctx))

		require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/events"}))
		require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/profile"}))

		waitFor(t, func() bool { return len(stub.paths()) == 2 })
		assert.ElementsMatch(t, []string{"/events", "/profile"}, stub.paths())
	})

	t.Run("retries a failed invalidation via requeue", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		q := queue.NewMemoryRevalidationQueue(10)
		stub := &pageCacheStub{failures: 1}
		w := worker.NewRevalidationWorker(stub, q)

		require.NoError(t, w.Start(ctx))
		require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/events"}))

		waitFor(t, func() bool { return len(stub.paths()) == 1 })
		assert.Equal(t, []string{"/events"}, stub.paths())
	})
}
