package collections

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/syntacticsugarglider/redis-backed/lib/session"
)

// listKeyPrefix namespaces list keys in the flat redis keyspace. It must
// stay bit-for-bit stable for interoperability with existing stored data.
const listKeyPrefix = "_orm_list:"

// List is a redis-backed list wrapping the built-in redis List structure.
//
// It behaves like a double-ended queue: adding and removing elements at the
// head or tail (push/pop) is O(1), while accessing a specific index costs
// O(n) over the distance from the nearest end.
type List[T any] struct {
	db  *session.Database
	key string
}

// GetList returns a handle to the list stored under the given logical name.
// This never contacts the network; the remote list comes into existence
// with the first push.
func GetList[T any](db *session.Database, name string) (*List[T], error) {
	return &List[T]{db: db, key: listKeyPrefix + name}, nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see collections.Collection / collections.Watchable)
// --------------------------------------------------------------------------

func (l *List[T]) Key() string {
	return l.key
}

func (l *List[T]) Kind() string {
	return "List"
}

func (l *List[T]) Database() *session.Database {
	return l.db
}

func (l *List[T]) ParseEvent(payload string) (ListEvent, error) {
	return parseListEvent(payload)
}

// Watch begins watching this list for changes and updates
func (l *List[T]) Watch(ctx context.Context) (*Watcher[ListEvent], error) {
	return Watch[ListEvent](ctx, l)
}

// --------------------------------------------------------------------------
// List Operations
// --------------------------------------------------------------------------

// PushFront pushes an element to the front/right/tail/end of the list. This
// makes the provided element the last item of the list. This operation is
// O(1).
func (l *List[T]) PushFront(ctx context.Context, item T) error {
	data, err := encodeElem(l.db, l.Kind(), item)
	if err != nil {
		return err
	}
	if err := l.client().RPush(ctx, l.key, data).Err(); err != nil {
		return newTransportError("RPUSH "+l.key, err)
	}
	return nil
}

// PushBack pushes an element to the rear/left/head/start of the list. This
// makes the provided element the first item of the list. This operation is
// O(1).
func (l *List[T]) PushBack(ctx context.Context, item T) error {
	data, err := encodeElem(l.db, l.Kind(), item)
	if err != nil {
		return err
	}
	if err := l.client().LPush(ctx, l.key, data).Err(); err != nil {
		return newTransportError("LPUSH "+l.key, err)
	}
	return nil
}

// PopFront pops an element from the front/right/tail/end of the list. This
// is also sometimes referred to as the last element of the list. The second
// return value is false when the list is empty; that is not an error. This
// operation is O(1).
func (l *List[T]) PopFront(ctx context.Context) (item T, ok bool, err error) {
	data, err := l.client().RPop(ctx, l.key).Bytes()
	if err == redis.Nil {
		return item, false, nil
	}
	if err != nil {
		return item, false, newTransportError("RPOP "+l.key, err)
	}
	item, err = decodeElem[T](l.db, l.Kind(), data)
	return item, err == nil, err
}

// PopBack pops an element from the rear/left/head/start of the list. This
// is also sometimes referred to as the first element of the list. The
// second return value is false when the list is empty; that is not an
// error. This operation is O(1).
func (l *List[T]) PopBack(ctx context.Context) (item T, ok bool, err error) {
	data, err := l.client().LPop(ctx, l.key).Bytes()
	if err == redis.Nil {
		return item, false, nil
	}
	if err != nil {
		return item, false, newTransportError("LPOP "+l.key, err)
	}
	item, err = decodeElem[T](l.db, l.Kind(), data)
	return item, err == nil, err
}

// Index returns the element at the given zero-based index. Negative indices
// count from the tail: -1 is the last element. A missing element is an
// error, not an empty result. This operation is O(n) over the distance of
// the index from the nearest end of the list.
func (l *List[T]) Index(ctx context.Context, index int64) (item T, err error) {
	data, err := l.client().LIndex(ctx, l.key, index).Bytes()
	if err == redis.Nil {
		return item, newTransportError(fmt.Sprintf("LINDEX %s: no element at index %d", l.key, index), err)
	}
	if err != nil {
		return item, newTransportError("LINDEX "+l.key, err)
	}
	return decodeElem[T](l.db, l.Kind(), data)
}

// SetIndex replaces the element at the given index, following the same
// indexing rules and complexity as Index. Setting an index that does not
// exist is an error.
func (l *List[T]) SetIndex(ctx context.Context, index int64, item T) error {
	data, err := encodeElem(l.db, l.Kind(), item)
	if err != nil {
		return err
	}
	if err := l.client().LSet(ctx, l.key, index, data).Err(); err != nil {
		return newTransportError(fmt.Sprintf("LSET %s %d", l.key, index), err)
	}
	return nil
}

// Range returns the elements between start and stop, both inclusive,
// following the same indexing rules as Index. An out-of-range window yields
// an empty slice, not an error. This operation is O(s+n) where s is the
// distance of start from the head and n the size of the window.
func (l *List[T]) Range(ctx context.Context, start, stop int64) ([]T, error) {
	raw, err := l.client().LRange(ctx, l.key, start, stop).Result()
	if err != nil {
		return nil, newTransportError("LRANGE "+l.key, err)
	}
	items := make([]T, 0, len(raw))
	for _, data := range raw {
		item, err := decodeElem[T](l.db, l.Kind(), []byte(data))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Trim removes every element outside the window between start and stop,
// both inclusive. A start beyond the end of the list leaves it empty; a
// stop beyond the end clamps to the last element. Neither is an error. This
// operation is O(n) over the number of elements removed.
func (l *List[T]) Trim(ctx context.Context, start, stop int64) error {
	if err := l.client().LTrim(ctx, l.key, start, stop).Err(); err != nil {
		return newTransportError("LTRIM "+l.key, err)
	}
	return nil
}

// Len returns the number of elements in the list, zero for a nonexistent
// list. This operation is O(1).
func (l *List[T]) Len(ctx context.Context) (int64, error) {
	n, err := l.client().LLen(ctx, l.key).Result()
	if err != nil {
		return 0, newTransportError("LLEN "+l.key, err)
	}
	return n, nil
}

// Remove removes up to count occurrences equal to item and returns the
// number actually removed. A positive count scans head to tail, a negative
// count scans tail to head with the magnitude bounding removals, and zero
// removes all occurrences. This operation is O(n) over the length of the
// list.
func (l *List[T]) Remove(ctx context.Context, count int64, item T) (int64, error) {
	data, err := encodeElem(l.db, l.Kind(), item)
	if err != nil {
		return 0, err
	}
	removed, err := l.client().LRem(ctx, l.key, count, data).Result()
	if err != nil {
		return 0, newTransportError("LREM "+l.key, err)
	}
	return removed, nil
}

// InsertBefore inserts value directly before the first occurrence of pivot
// and reports whether the pivot was found; when it is false no insertion
// occurred. This operation is O(n) over the distance of the pivot from the
// head of the list.
func (l *List[T]) InsertBefore(ctx context.Context, pivot, value T) (bool, error) {
	return l.insert(ctx, "BEFORE", pivot, value)
}

// InsertAfter inserts value directly after the first occurrence of pivot
// and reports whether the pivot was found; when it is false no insertion
// occurred. This operation is O(n) over the distance of the pivot from the
// head of the list.
func (l *List[T]) InsertAfter(ctx context.Context, pivot, value T) (bool, error) {
	return l.insert(ctx, "AFTER", pivot, value)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func (l *List[T]) insert(ctx context.Context, op string, pivot, value T) (bool, error) {
	pivotData, err := encodeElem(l.db, l.Kind(), pivot)
	if err != nil {
		return false, err
	}
	valueData, err := encodeElem(l.db, l.Kind(), value)
	if err != nil {
		return false, err
	}
	n, err := l.client().LInsert(ctx, l.key, op, pivotData, valueData).Result()
	if err != nil {
		return false, newTransportError("LINSERT "+l.key, err)
	}
	// -1 when the pivot was not found, 0 when the list does not exist
	return n > 0, nil
}

func (l *List[T]) client() *redis.Client {
	return l.db.Handle().Client()
}

// --------------------------------------------------------------------------
// List Events
// --------------------------------------------------------------------------

// ListEvent is a list-specific notification: the list operation that
// modified the watched key.
type ListEvent uint8

const (
	// ListPushFront: an element was pushed to the front (RPUSH)
	ListPushFront ListEvent = iota
	// ListPushBack: an element was pushed to the back (LPUSH)
	ListPushBack
	// ListPopFront: an element was popped from the front (RPOP)
	ListPopFront
	// ListPopBack: an element was popped from the back (LPOP)
	ListPopBack
	// ListSetIndex: an element was replaced in place (LSET)
	ListSetIndex
	// ListTrim: the list was trimmed to a window (LTRIM)
	ListTrim
	// ListRemove: occurrences of an element were removed (LREM)
	ListRemove
	// ListInsert: an element was inserted relative to a pivot (LINSERT)
	ListInsert
)

// listEventNames maps the keyspace notification payloads published by the
// server to list events
var listEventNames = map[string]ListEvent{
	"rpush":   ListPushFront,
	"lpush":   ListPushBack,
	"rpop":    ListPopFront,
	"lpop":    ListPopBack,
	"lset":    ListSetIndex,
	"ltrim":   ListTrim,
	"lrem":    ListRemove,
	"linsert": ListInsert,
}

// String implements the fmt.Stringer interface
func (e ListEvent) String() string {
	for name, ev := range listEventNames {
		if ev == e {
			return name
		}
	}
	return "unknown"
}

func parseListEvent(payload string) (ListEvent, error) {
	if ev, ok := listEventNames[payload]; ok {
		return ev, nil
	}
	return 0, newNotificationError("List", payload)
}
