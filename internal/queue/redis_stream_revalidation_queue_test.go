package queue_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"evently/config"
	"evently/internal/database"
	"evently/internal/queue"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Test redis unavailable, redis stream tests will be skipped: %v", err)
	} else {
		testRdb = rdb
		log.Println("Test redis connected successfully")
	}

	code := m.Run()

	if testRdb != nil {
		testRdb.Close()
	}
	os.Exit(code)
}

// streamTestClient skips the redis-backed tests when no test redis is
// running and starts each of them from an empty stream.
func streamTestClient(t *testing.T) *redis.Client {
	t.Helper()
	if testRdb == nil {
		t.Skip("test redis unavailable")
	}
	if err := testRdb.Del(context.Background(), queue.StreamKey).Err(); err != nil {
		t.Fatalf("Failed to clean up stream: %v", err)
	}
	return testRdb
}

func TestNewRedisStreamRevalidationQueue(t *testing.T) {
	rdb := streamTestClient(t)

	t.Run("Success", func(t *testing.T) {
		q, err := queue.NewRedisStreamRevalidationQueue(rdb, "test-consumer", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("Success - empty consumer id generates one", func(t *testing.T) {
		q, err := queue.NewRedisStreamRevalidationQueue(rdb, "", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})
}

func TestRedisStreamRevalidationQueue_Subscribe_deliversPublishedNotification(t *testing.T) {
	rdb := streamTestClient(t)
	ctx := context.Background()

	q, err := queue.NewRedisStreamRevalidationQueue(rdb, "deliver-test", nil)
	require.NoError(t, err)

	requested := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/events", RequestedAt: requested}))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		assert.Equal(t, "/events", d.Data.Path)
		assert.True(t, requested.Equal(d.Data.RequestedAt))
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for delivery")
	}
}

func TestRedisStreamRevalidationQueue_Ack_preventsRedelivery(t *testing.T) {
	rdb := streamTestClient(t)
	ctx := context.Background()

	q, err := queue.NewRedisStreamRevalidationQueue(rdb, "ack-test", nil)
	require.NoError(t, err)

	require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/events/1", RequestedAt: time.Now().UTC()}))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for first delivery")
	}

	cancel()
	next, ok := <-delCh
	assert.False(t, ok, "channel should close after cancel without redelivering")
	if ok && next.Data != nil {
		t.Fatalf("acked message was redelivered: %s", next.Data.Path)
	}
}

func TestRedisStreamRevalidationQueue_NackDiscard_preventsRedelivery(t *testing.T) {
	rdb := streamTestClient(t)
	ctx := context.Background()

	q, err := queue.NewRedisStreamRevalidationQueue(rdb, "nack-discard-test", nil)
	require.NoError(t, err)

	require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/events/2", RequestedAt: time.Now().UTC()}))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		assert.Equal(t, "/events/2", d.Data.Path)
		d.Nack(false)
	case <-subCtx.Done():
		t.Fatal("timeout waiting for first delivery")
	}

	select {
	case d, ok := <-delCh:
		if ok && d.Data != nil && d.Data.Path == "/events/2" {
			t.Fatalf("discarded message was redelivered: %s", d.Data.Path)
		}
	case <-time.After(2 * time.Second):
		// no redelivery within the window, discard held
	}
	cancel()
}

func TestRedisStreamRevalidationQueue_NackRequeue_redeliversAfterIdle(t *testing.T) {
	rdb := streamTestClient(t)
	ctx := context.Background()

	cfg := &queue.RedisStreamRevalidationQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 500 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamRevalidationQueue(rdb, "nack-requeue-test", cfg)
	require.NoError(t, err)

	require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/events/3", RequestedAt: time.Now().UTC()}))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-delCh:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		assert.Equal(t, "/events/3", d.Data.Path)
		d.Nack(true)
	case <-subCtx.Done():
		t.Fatal("timeout waiting for first delivery")
	}

	select {
	case d, ok := <-delCh:
		require.True(t, ok, "nacked message should be claimed back after the idle time")
		require.NotNil(t, d.Data)
		assert.Equal(t, "/events/3", d.Data.Path)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for redelivery")
	}
}

func TestRedisStreamRevalidationQueue_poisonMessage_discardedAfterMaxRetries(t *testing.T) {
	rdb := streamTestClient(t)
	ctx := context.Background()

	cfg := &queue.RedisStreamRevalidationQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		MaxRetryCount:      3,
		ReadGroupBlockTime: 200 * time.Millisecond,
	}
	q, err := queue.NewRedisStreamRevalidationQueue(rdb, "poison-test", cfg)
	require.NoError(t, err)

	require.NoError(t, q.Publish(ctx, &queue.Notification{Path: "/events/poison", RequestedAt: time.Now().UTC()}))

	subCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	received := 0
	waitNoMore := 500 * time.Millisecond
loop:
	for {
		select {
		case d, ok := <-delCh:
			if !ok {
				t.Fatalf("channel closed early after %d deliveries", received)
			}
			require.NotNil(t, d.Data)
			assert.Equal(t, "/events/poison", d.Data.Path)
			received++
			d.Nack(true)
		case <-time.After(waitNoMore):
			if received >= 1 {
				break loop
			}
			t.Fatal("timeout waiting for any delivery")
		case <-subCtx.Done():
			t.Fatalf("test context timeout after %d deliveries", received)
		}
	}

	require.GreaterOrEqual(t, received, 1)
	select {
	case d, ok := <-delCh:
		if ok && d.Data != nil && d.Data.Path == "/events/poison" {
			t.Fatalf("poison message redelivered after max retries: %s", d.Data.Path)
		}
	case <-time.After(500 * time.Millisecond):
		// no redelivery within the window, discard held
	}
}

func TestRedisStreamRevalidationQueue_Subscribe_cancelClosesChannel(t *testing.T) {
	rdb := streamTestClient(t)

	q, err := queue.NewRedisStreamRevalidationQueue(rdb, "cancel-test", nil)
	require.NoError(t, err)

	subCtx, cancel := context.WithCancel(context.Background())
	delCh, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-delCh:
		assert.False(t, ok, "channel should close after context cancellation")
	case <-time.After(3 * time.Second):
		t.Fatal("channel did not close in time")
	}
}
