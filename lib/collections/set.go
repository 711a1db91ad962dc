package collections

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/syntacticsugarglider/redis-backed/lib/session"
)

// setKeyPrefix namespaces set keys in the flat redis keyspace. It must stay
// bit-for-bit stable for interoperability with existing stored data.
const setKeyPrefix = "_orm_set:"

// Set is a redis-backed set wrapping the built-in redis Set data structure.
//
// This is a hashset that stores one copy of each unique element and permits
// low-cost O(1) existence checks and additions.
type Set[T any] struct {
	db  *session.Database
	key string
}

// GetSet returns a handle to the set stored under the given logical name.
// This never contacts the network; the remote set comes into existence with
// the first add.
func GetSet[T any](db *session.Database, name string) (*Set[T], error) {
	return &Set[T]{db: db, key: setKeyPrefix + name}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see collections.Collection / collections.Watchable)
// --------------------------------------------------------------------------

func (s *Set[T]) Key() string {
	return s.key
}

func (s *Set[T]) Kind() string {
	return "Set"
}

func (s *Set[T]) Database() *session.Database {
	return s.db
}

func (s *Set[T]) ParseEvent(payload string) (SetEvent, error) {
	return 0, newNotificationError(s.Kind(), payload)
}

// Watch begins watching this set for changes and updates
func (s *Set[T]) Watch(ctx context.Context) (*Watcher[SetEvent], error) {
	return Watch[SetEvent](ctx, s)
}

// --------------------------------------------------------------------------
// Set Operations
// --------------------------------------------------------------------------

// Add adds the provided item to the set, returning false if it was already
// present and true otherwise. This operation is O(1).
func (s *Set[T]) Add(ctx context.Context, item T) (bool, error) {
	data, err := encodeElem(s.db, s.Kind(), item)
	if err != nil {
		return false, err
	}
	added, err := s.client().SAdd(ctx, s.key, data).Result()
	if err != nil {
		return false, newTransportError("SADD "+s.key, err)
	}
	return added == 1, nil
}

// Remove removes the provided item from the set, returning false if the
// item was not already present and true otherwise. This operation is O(1).
func (s *Set[T]) Remove(ctx context.Context, item T) (bool, error) {
	data, err := encodeElem(s.db, s.Kind(), item)
	if err != nil {
		return false, err
	}
	removed, err := s.client().SRem(ctx, s.key, data).Result()
	if err != nil {
		return false, newTransportError("SREM "+s.key, err)
	}
	return removed == 1, nil
}

// Contains checks if the provided item is a member of the set. This
// operation is O(1).
func (s *Set[T]) Contains(ctx context.Context, item T) (bool, error) {
	data, err := encodeElem(s.db, s.Kind(), item)
	if err != nil {
		return false, err
	}
	member, err := s.client().SIsMember(ctx, s.key, data).Result()
	if err != nil {
		return false, newTransportError("SISMEMBER "+s.key, err)
	}
	return member, nil
}

// Count returns the number of elements in the set or 0 if the set does not
// exist. This operation is O(1).
func (s *Set[T]) Count(ctx context.Context) (int64, error) {
	count, err := s.client().SCard(ctx, s.key).Result()
	if err != nil {
		return 0, newTransportError("SCARD "+s.key, err)
	}
	return count, nil
}

// Members returns a slice containing all members of the set, in unspecified
// order: redis does not guarantee an ordering for this structure. This
// operation is O(n) over the number of elements in the set.
func (s *Set[T]) Members(ctx context.Context) ([]T, error) {
	raw, err := s.client().SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, newTransportError("SMEMBERS "+s.key, err)
	}
	items := make([]T, 0, len(raw))
	for _, data := range raw {
		item, err := decodeElem[T](s.db, s.Kind(), []byte(data))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func (s *Set[T]) client() *redis.Client {
	return s.db.Handle().Client()
}

// --------------------------------------------------------------------------
// Set Events
// --------------------------------------------------------------------------

// SetEvent enumerates the set-specific notification payloads. The set kind
// currently defines none, so every payload other than the generic "del" is
// a parse error carrying the offending payload.
type SetEvent uint8

// String implements the fmt.Stringer interface
func (e SetEvent) String() string {
	return "unknown"
}
