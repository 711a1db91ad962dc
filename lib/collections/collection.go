package collections

import (
	"context"
	"fmt"

	"github.com/syntacticsugarglider/redis-backed/lib/session"
)

// --------------------------------------------------------------------------
// Interface Definitions
// --------------------------------------------------------------------------

// Collection is implemented by every redis-backed collection kind (List,
// Set, and future kinds). A collection is a handle, not a container: it owns
// no local copy of data, and dropping it has no remote side effect. The
// generic key operations Remove and Watch are derived once from this
// contract and apply to all kinds uniformly.
type Collection interface {
	// Key returns the fully namespaced redis key of the collection. The
	// namespace prefix is derived solely from the collection kind and is
	// fixed at creation.
	Key() string
	// Kind returns the collection kind name, e.g. "List"
	Kind() string
	// Database returns the database this collection is bound to
	Database() *session.Database
}

// Watchable is a Collection with a kind-specific notification payload
// parser. E is the kind's type-specific event type.
type Watchable[E any] interface {
	Collection
	// ParseEvent parses a kind-specific notification payload. The generic
	// "del" payload is handled before this is called; ParseEvent only sees
	// payloads the generic layer does not recognize.
	ParseEvent(payload string) (E, error)
}

// --------------------------------------------------------------------------
// Generic Key Operations
// --------------------------------------------------------------------------

// Remove deletes the collection's data from the database with a single DEL.
// Removing a nonexistent key succeeds silently. This operation is O(1).
func Remove(ctx context.Context, c Collection) error {
	if err := c.Database().Handle().Client().Del(ctx, c.Key()).Err(); err != nil {
		return newTransportError(fmt.Sprintf("DEL %s", c.Key()), err)
	}
	return nil
}

// --------------------------------------------------------------------------
// Element codec helpers (shared by all collection kinds)
// --------------------------------------------------------------------------

// encodeElem serializes one element for storage
func encodeElem(db *session.Database, kind string, item any) ([]byte, error) {
	data, err := db.Serializer().Serialize(item)
	if err != nil {
		return nil, newSerializationError(fmt.Sprintf("encoding %s element", kind), err)
	}
	return data, nil
}

// decodeElem deserializes one element read back from storage
func decodeElem[T any](db *session.Database, kind string, data []byte) (T, error) {
	var item T
	if err := db.Serializer().Deserialize(data, &item); err != nil {
		return item, newSerializationError(fmt.Sprintf("decoding %s element", kind), err)
	}
	return item, nil
}
