package database

import (
	"context"
	"sync"
	"time"

	"evently/config"
	apperrors "evently/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connector lazily opens one pgx pool for the process lifetime.
// Concurrent callers of Connect share a single in-flight dial; a failed
// dial clears the pending attempt so a later call can retry.
type Connector struct {
	mu      sync.Mutex
	pool    *pgxpool.Pool
	pending *attempt

	url  string
	dial func(ctx context.Context, url string) (*pgxpool.Pool, error)
}

type attempt struct {
	done chan struct{}
	pool *pgxpool.Pool
	err  error
}

func NewConnector(cfg *config.DatabaseConfig) *Connector {
	return &Connector{
		url:  cfg.URL,
		dial: dialPool,
	}
}

func (c *Connector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	c.mu.Lock()
	if c.pool != nil {
		pool := c.pool
		c.mu.Unlock()
		return pool, nil
	}
	if c.url == "" {
		c.mu.Unlock()
		return nil, apperrors.ErrMissingDatabaseURL
	}
	a := c.pending
	if a == nil {
		a = &attempt{done: make(chan struct{})}
		c.pending = a
		go c.run(a)
	}
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-a.done:
	}
	return a.pool, a.err
}

// run performs the dial off the caller's context: waiters may give up,
// but an attempt that succeeds is still cached for the next caller.
func (c *Connector) run(a *attempt) {
	pool, err := c.dial(context.Background(), c.url)

	c.mu.Lock()
	if err != nil {
		a.err = err
		c.pending = nil
	} else {
		a.pool = pool
		c.pool = pool
		c.pending = nil
	}
	c.mu.Unlock()

	close(a.done)
}

// Close releases the pool if one was ever established.
func (c *Connector) Close() {
	c.mu.Lock()
	pool := c.pool
	c.pool = nil
	c.mu.Unlock()

	if pool != nil {
		pool.Close()
	}
}

func dialPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
