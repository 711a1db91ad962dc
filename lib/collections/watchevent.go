package collections

import (
	"fmt"
)

// --------------------------------------------------------------------------
// Event Types
// --------------------------------------------------------------------------

// GenericEvent is a notification that applies to every collection kind.
type GenericEvent uint8

const (
	// GenericRemove signals that the watched key was removed from the
	// database
	GenericRemove GenericEvent = iota
)

// String implements the fmt.Stringer interface
func (e GenericEvent) String() string {
	switch e {
	case GenericRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// EventScope discriminates the two arms of a WatchEvent.
type EventScope uint8

const (
	// ScopeGeneric marks an event that applies to all key types
	ScopeGeneric EventScope = iota
	// ScopeTypeSpecific marks an event that applies only to the watched
	// collection's kind
	ScopeTypeSpecific
)

// WatchEvent is one decoded change notification for a watched key: either a
// generic event shared by all collection kinds or a kind-specific event of
// type E. Scope selects which of the two fields is valid.
type WatchEvent[E any] struct {
	Scope        EventScope
	Generic      GenericEvent // valid when Scope == ScopeGeneric
	TypeSpecific E            // valid when Scope == ScopeTypeSpecific
}

// String implements the fmt.Stringer interface
func (e WatchEvent[E]) String() string {
	if e.Scope == ScopeGeneric {
		return fmt.Sprintf("generic(%s)", e.Generic)
	}
	return fmt.Sprintf("type-specific(%v)", e.TypeSpecific)
}

// --------------------------------------------------------------------------
// Payload Parsing
// --------------------------------------------------------------------------

// parseWatchEvent decodes a raw notification payload. The literal payload
// "del" always maps to the generic remove event regardless of collection
// kind; every other payload is delegated to the kind's own parser, which may
// itself fail.
func parseWatchEvent[E any](c Watchable[E], payload string) (WatchEvent[E], error) {
	if payload == "del" {
		return WatchEvent[E]{Scope: ScopeGeneric, Generic: GenericRemove}, nil
	}
	ev, err := c.ParseEvent(payload)
	if err != nil {
		return WatchEvent[E]{}, err
	}
	return WatchEvent[E]{Scope: ScopeTypeSpecific, TypeSpecific: ev}, nil
}
