package session

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/go-redis/redis/v8"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/syntacticsugarglider/redis-backed/lib/serializer"
	"go.uber.org/zap"
)

// Database is the entry point of the library: it owns the connection handle,
// the element serializer and the registry of live watchers. Collections are
// obtained from a Database via collections.GetList / collections.GetSet.
type Database struct {
	handle *Handle
	cfg    Config

	// Registry of live watcher subscriptions, keyed by a monotonically
	// increasing ID. Close tears down every registered watcher before the
	// connection, so no producer goroutine outlives the Database.
	closers      *xsync.MapOf[uint64, io.Closer]
	nextCloserID uint64
}

// New creates a Database for the given address, e.g.
// "redis://localhost:6379/0".
//
// The address is validated eagerly but no connection attempt is made: this
// call succeeds even if no server is listening. The connection is opened by
// the first operation that needs it.
func New(addr string) (*Database, error) {
	return NewWithConfig(Config{Addr: addr})
}

// NewWithConfig creates a Database from a full Config
func NewWithConfig(cfg Config) (*Database, error) {
	cfg = cfg.withDefaults()
	opts, err := cfg.parseOptions()
	if err != nil {
		return nil, err
	}
	return &Database{
		handle:  newHandle(opts),
		cfg:     cfg,
		closers: xsync.NewMapOf[uint64, io.Closer](),
	}, nil
}

// NewFromClient creates a Database around an existing redis client. Intended
// for tests (e.g. redismock) and callers that manage client construction
// themselves. Only the Serializer and EventBuffer fields of the config are
// used; the zero Config selects CBOR and unbounded watcher queues.
func NewFromClient(client *redis.Client, cfg Config) *Database {
	cfg = cfg.withDefaults()
	return &Database{
		handle:  newHandleFromClient(client),
		cfg:     cfg,
		closers: xsync.NewMapOf[uint64, io.Closer](),
	}
}

// Handle returns the shared connection handle
func (db *Database) Handle() *Handle {
	return db.handle
}

// Serializer returns the element serializer used by all collections of this
// Database
func (db *Database) Serializer() serializer.ISerializer {
	return db.cfg.Serializer
}

// EventBuffer returns the configured watcher channel capacity (0 = unbounded)
func (db *Database) EventBuffer() int {
	return db.cfg.EventBuffer
}

// EnableNotifications turns on keyspace event notifications on the server.
// Watchers only receive events when the server has the feature enabled; this
// issues CONFIG SET notify-keyspace-events KEA so callers don't have to
// configure the server out of band. Managed redis offerings may reject
// CONFIG, in which case the setting must be applied server-side.
func (db *Database) EnableNotifications(ctx context.Context) error {
	return db.handle.Client().ConfigSet(ctx, "notify-keyspace-events", "KEA").Err()
}

// RegisterCloser adds a resource (a watcher) to the teardown registry and
// returns its registration ID
func (db *Database) RegisterCloser(c io.Closer) uint64 {
	id := atomic.AddUint64(&db.nextCloserID, 1)
	db.closers.Store(id, c)
	return id
}

// UnregisterCloser removes a resource from the teardown registry
func (db *Database) UnregisterCloser(id uint64) {
	db.closers.Delete(id)
}

// Close stops all live watchers and releases the connection handle
func (db *Database) Close() error {
	db.closers.Range(func(id uint64, c io.Closer) bool {
		if err := c.Close(); err != nil {
			zap.S().Warnf("session: error closing watcher %d: %v", id, err)
		}
		db.closers.Delete(id)
		return true
	})
	return db.handle.Close()
}
