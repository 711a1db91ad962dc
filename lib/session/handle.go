package session

import (
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Handle is the shared handle to the command connection pool of one
// Database. The underlying client is opened lazily: creating a Handle (and
// therefore a Database) performs no network I/O, the first command does.
//
// With the default pool size of 1 every command round trip serializes on a
// single physical connection, so concurrent callers execute in mutual
// exclusion at the wire-protocol level. There is no FIFO guarantee across
// concurrent callers, only non-interleaving.
type Handle struct {
	opts *redis.Options

	mu     sync.Mutex // guards lazy client creation
	client *redis.Client
}

// newHandle creates a handle around validated client options
func newHandle(opts *redis.Options) *Handle {
	return &Handle{opts: opts}
}

// newHandleFromClient wraps an existing client, e.g. a mock in tests
func newHandleFromClient(client *redis.Client) *Handle {
	return &Handle{client: client}
}

// Client returns the shared redis client, opening it on first use
func (h *Handle) Client() *redis.Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.client == nil {
		h.client = redis.NewClient(h.opts)
		h.client.AddHook(&metricsHook{})
		zap.S().Debugf("session: opened redis client for %s (pool size %d)", h.opts.Addr, h.opts.PoolSize)
	}
	return h.client
}

// DB returns the redis database index this handle is bound to. Watchers use
// it to derive the keyspace notification channel name.
func (h *Handle) DB() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.opts != nil {
		return h.opts.DB
	}
	if h.client != nil {
		return h.client.Options().DB
	}
	return 0
}

// Close releases the underlying client if it was ever opened
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.client == nil {
		return nil
	}
	err := h.client.Close()
	h.client = nil
	return err
}
