package collections

import (
	"errors"
	"strings"
	"testing"
)

// TestDelAlwaysGeneric checks that the "del" payload decodes to the generic
// remove event for every collection kind
func TestDelAlwaysGeneric(t *testing.T) {
	db, _ := newTestDB(t)
	list, _ := GetList[string](db, "k")
	set, _ := GetSet[string](db, "k")

	listEvent, err := parseWatchEvent[ListEvent](list, "del")
	if err != nil {
		t.Fatalf("Parsing del for a list failed: %v", err)
	}
	if listEvent.Scope != ScopeGeneric || listEvent.Generic != GenericRemove {
		t.Errorf("Unexpected list event: %v", listEvent)
	}

	setEvent, err := parseWatchEvent[SetEvent](set, "del")
	if err != nil {
		t.Fatalf("Parsing del for a set failed: %v", err)
	}
	if setEvent.Scope != ScopeGeneric || setEvent.Generic != GenericRemove {
		t.Errorf("Unexpected set event: %v", setEvent)
	}
}

// TestListEventPayloads checks the mapping of keyspace notification names to
// list events
func TestListEventPayloads(t *testing.T) {
	db, _ := newTestDB(t)
	list, _ := GetList[string](db, "k")

	cases := map[string]ListEvent{
		"rpush":   ListPushFront,
		"lpush":   ListPushBack,
		"rpop":    ListPopFront,
		"lpop":    ListPopBack,
		"lset":    ListSetIndex,
		"ltrim":   ListTrim,
		"lrem":    ListRemove,
		"linsert": ListInsert,
	}
	for payload, want := range cases {
		event, err := parseWatchEvent[ListEvent](list, payload)
		if err != nil {
			t.Errorf("Parsing %q failed: %v", payload, err)
			continue
		}
		if event.Scope != ScopeTypeSpecific || event.TypeSpecific != want {
			t.Errorf("Payload %q parsed to %v, expected %v", payload, event, want)
		}
	}
}

// TestUnknownPayloadIsParseError checks that unrecognized payloads surface
// as notification errors carrying the payload and the collection kind
func TestUnknownPayloadIsParseError(t *testing.T) {
	db, _ := newTestDB(t)
	list, _ := GetList[string](db, "k")
	set, _ := GetSet[string](db, "k")

	// the set kind defines no type-specific events at all
	for _, payload := range []string{"sadd", "srem", "expire"} {
		_, err := parseWatchEvent[SetEvent](set, payload)
		if err == nil {
			t.Errorf("Expected parse error for set payload %q", payload)
			continue
		}
		var cerr *Error
		if !errors.As(err, &cerr) || cerr.Kind != KindNotification {
			t.Errorf("Expected notification error for %q, got %v", payload, err)
			continue
		}
		if !strings.Contains(cerr.Msg, payload) || !strings.Contains(cerr.Msg, "Set") {
			t.Errorf("Error should carry payload and kind, got %q", cerr.Msg)
		}
	}

	if _, err := parseWatchEvent[ListEvent](list, "incrby"); err == nil {
		t.Error("Expected parse error for non-list payload")
	}
}
