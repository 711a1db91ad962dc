// Package collections provides typed, redis-backed data structures. A
// collection is a client-side handle to a named structure whose contents
// live on the server: creating one costs nothing, dropping one has no
// remote side effect, and every operation is a single command round trip
// that preserves the complexity guarantees of the underlying redis
// primitive.
//
// Key Components:
//
//   - Collection / Watchable: the contract every collection kind
//     implements. The generic key operations Remove (DEL) and Watch are
//     derived once from the contract and apply to all kinds uniformly.
//
//   - List: a typed double-ended queue over the redis List primitive, with
//     O(1) push/pop at either end plus index, range, trim, targeted
//     removal and pivot-relative insertion.
//
//   - Set: a typed unique-element collection over the redis Set primitive,
//     with O(1) add, remove and membership tests.
//
//   - Watcher: a live subscription to the keyspace notifications of one
//     key ("__keyspace@<db>__:<key>"). A background goroutine owns a
//     dedicated pubsub connection and bridges its blocking message loop
//     into the Events channel. The payload "del" always decodes to the
//     generic remove event; other payloads go through the kind-specific
//     parser, and unrecognized ones surface as error items without
//     terminating the stream. A failed subscription closes the stream with
//     a terminal error available from Err.
//
// Key Namespacing:
//
//	Collection kinds share the flat redis keyspace, so keys are prefixed
//	per kind ("_orm_list:", "_orm_set:") followed by the caller-supplied
//	logical name verbatim. A List "people" and a Set "people" therefore
//	never collide. The prefixes are part of the stored-data format and
//	must never change.
//
// Error Handling:
//
//	Every operation returns a *Error wrapping the underlying cause with a
//	kind (transport, serialization, notification). Nothing is retried
//	automatically; failures propagate to the immediate caller.
//
// Usage:
//
//	db, err := session.New("redis://localhost:6379/0")
//	people, err := collections.GetList[Person](db, "people")
//	err = people.PushFront(ctx, Person{Name: "john", Age: 52})
//	n, err := people.Len(ctx)
//
//	watcher, err := people.Watch(ctx)
//	defer watcher.Close()
//	for item := range watcher.Events() {
//	    ...
//	}
package collections
