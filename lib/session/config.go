package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/syntacticsugarglider/redis-backed/lib/serializer"
)

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// Config holds all configuration parameters for a Database.
type Config struct {
	// Addr is the URI-like address of the redis server, e.g.
	// "redis://localhost:6379/0". It is validated when the Database is
	// created, before any network I/O happens.
	Addr string

	// PoolSize is the number of physical connections in the command pool.
	// The default of 1 preserves the "one logical session, mutually
	// exclusive access" behavior: all command round trips serialize on a
	// single connection. Larger values trade that serialization for
	// throughput. Watcher subscriptions always use their own dedicated
	// connections and are not counted here.
	PoolSize int

	// EventBuffer is the capacity of each watcher's event channel. A value
	// greater than zero bounds the channel: when it is full the watcher's
	// producer blocks, applying backpressure to notification delivery. The
	// zero value selects an unbounded queue, which never blocks the
	// producer but lets a fast-publishing key grow client memory without
	// limit.
	EventBuffer int

	// Serializer encodes and decodes collection elements. Defaults to CBOR.
	Serializer serializer.ISerializer
}

// withDefaults fills in the default values for unset fields
func (c Config) withDefaults() Config {
	if c.PoolSize <= 0 {
		c.PoolSize = 1
	}
	if c.Serializer == nil {
		c.Serializer = serializer.NewCBORSerializer()
	}
	return c
}

// parseOptions validates the address and converts the config into go-redis
// client options. No connection attempt is made here.
func (c Config) parseOptions() (*redis.Options, error) {
	opts, err := redis.ParseURL(c.Addr)
	if err != nil {
		return nil, fmt.Errorf("invalid redis address %q: %w", c.Addr, err)
	}
	opts.PoolSize = c.PoolSize
	return opts, nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Connection")
	addField("Address", c.Addr)
	addField("Pool Size", strconv.Itoa(c.PoolSize))

	addSection("Collections")
	if c.Serializer != nil {
		addField("Serializer", c.Serializer.Name())
	} else {
		addField("Serializer", "cbor (default)")
	}
	if c.EventBuffer > 0 {
		addField("Event Buffer", strconv.Itoa(c.EventBuffer))
	} else {
		addField("Event Buffer", "unbounded")
	}

	return sb.String()
}
