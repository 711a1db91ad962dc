package collections

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/syntacticsugarglider/redis-backed/lib/session"
)

// testPerson mirrors the kind of struct users store in collections
type testPerson struct {
	Name string `cbor:"name" json:"name"`
	Age  uint8  `cbor:"age" json:"age"`
}

// newTestDB creates a database around a mocked client
func newTestDB(t *testing.T) (*session.Database, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	return session.NewFromClient(client, session.Config{}), mock
}

// mustEncode encodes a value with the database's serializer
func mustEncode(t *testing.T, db *session.Database, v any) []byte {
	t.Helper()
	data, err := db.Serializer().Serialize(v)
	if err != nil {
		t.Fatalf("Failed to encode test value: %v", err)
	}
	return data
}

func checkExpectations(t *testing.T, mock redismock.ClientMock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet redis expectations: %v", err)
	}
}

// TestListKeyNamespace checks the stored-data key prefix is applied verbatim
func TestListKeyNamespace(t *testing.T) {
	db, _ := newTestDB(t)
	list, err := GetList[testPerson](db, "people")
	if err != nil {
		t.Fatalf("GetList failed: %v", err)
	}
	if list.Key() != "_orm_list:people" {
		t.Errorf("Unexpected key: %q", list.Key())
	}
	if list.Kind() != "List" {
		t.Errorf("Unexpected kind: %q", list.Kind())
	}
}

// TestListPushPopScenario covers the push-front / len / pop-back round trip
func TestListPushPopScenario(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[testPerson](db, "people")

	john := testPerson{Name: "john", Age: 52}
	data := mustEncode(t, db, john)

	mock.ExpectRPush(list.Key(), data).SetVal(1)
	mock.ExpectLLen(list.Key()).SetVal(1)
	mock.ExpectLPop(list.Key()).SetVal(string(data))
	mock.ExpectLLen(list.Key()).SetVal(0)

	if err := list.PushFront(ctx, john); err != nil {
		t.Fatalf("PushFront failed: %v", err)
	}
	if n, err := list.Len(ctx); err != nil || n != 1 {
		t.Fatalf("Expected length 1, got %d (err %v)", n, err)
	}
	item, ok, err := list.PopBack(ctx)
	if err != nil || !ok {
		t.Fatalf("PopBack failed: ok=%v err=%v", ok, err)
	}
	if item != john {
		t.Errorf("Popped element doesn't match: %+v", item)
	}
	if n, err := list.Len(ctx); err != nil || n != 0 {
		t.Fatalf("Expected length 0, got %d (err %v)", n, err)
	}
	checkExpectations(t, mock)
}

// TestListFIFO checks the queue ordering contract: elements pushed to the
// back come out of the front in insertion order
func TestListFIFO(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[string](db, "queue")

	a := mustEncode(t, db, "a")
	b := mustEncode(t, db, "b")

	mock.ExpectLPush(list.Key(), a).SetVal(1)
	mock.ExpectLPush(list.Key(), b).SetVal(2)
	mock.ExpectRPop(list.Key()).SetVal(string(a))
	mock.ExpectRPop(list.Key()).SetVal(string(b))

	if err := list.PushBack(ctx, "a"); err != nil {
		t.Fatalf("PushBack failed: %v", err)
	}
	if err := list.PushBack(ctx, "b"); err != nil {
		t.Fatalf("PushBack failed: %v", err)
	}
	first, _, err := list.PopFront(ctx)
	if err != nil || first != "a" {
		t.Errorf("Expected first pop to yield a, got %q (err %v)", first, err)
	}
	second, _, err := list.PopFront(ctx)
	if err != nil || second != "b" {
		t.Errorf("Expected second pop to yield b, got %q (err %v)", second, err)
	}
	checkExpectations(t, mock)
}

// TestListPopEmpty checks that popping an empty list is not an error
func TestListPopEmpty(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[testPerson](db, "people")

	mock.ExpectRPop(list.Key()).RedisNil()
	mock.ExpectLPop(list.Key()).RedisNil()

	if _, ok, err := list.PopFront(ctx); err != nil || ok {
		t.Errorf("Expected empty pop-front, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := list.PopBack(ctx); err != nil || ok {
		t.Errorf("Expected empty pop-back, got ok=%v err=%v", ok, err)
	}
	checkExpectations(t, mock)
}

// TestListIndex checks indexing rules: negative indices count from the
// tail, and a missing element is an error rather than an empty result
func TestListIndex(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[string](db, "people")

	last := mustEncode(t, db, "last")
	mock.ExpectLIndex(list.Key(), -1).SetVal(string(last))
	mock.ExpectLIndex(list.Key(), 5).RedisNil()

	item, err := list.Index(ctx, -1)
	if err != nil || item != "last" {
		t.Errorf("Index(-1) = %q, err %v", item, err)
	}

	_, err = list.Index(ctx, 5)
	if err == nil {
		t.Fatal("Expected error for out-of-range index")
	}
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != KindTransport {
		t.Errorf("Expected transport error, got %v", err)
	}
	if !errors.Is(err, redis.Nil) {
		t.Errorf("Expected the redis nil reply as cause, got %v", err)
	}
	checkExpectations(t, mock)
}

// TestListRangeInclusive checks that the stop bound is inclusive
func TestListRangeInclusive(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[string](db, "people")

	a := mustEncode(t, db, "a")
	b := mustEncode(t, db, "b")
	mock.ExpectLRange(list.Key(), 0, 1).SetVal([]string{string(a), string(b)})

	items, err := list.Range(ctx, 0, 1)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Errorf("Unexpected range result: %v", items)
	}
	checkExpectations(t, mock)
}

// TestListSetIndexAndTrim covers the in-place mutation commands
func TestListSetIndexAndTrim(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[string](db, "people")

	v := mustEncode(t, db, "v")
	mock.ExpectLSet(list.Key(), 1, v).SetVal("OK")
	mock.ExpectLTrim(list.Key(), 0, 2).SetVal("OK")

	if err := list.SetIndex(ctx, 1, "v"); err != nil {
		t.Fatalf("SetIndex failed: %v", err)
	}
	if err := list.Trim(ctx, 0, 2); err != nil {
		t.Fatalf("Trim failed: %v", err)
	}
	checkExpectations(t, mock)
}

// TestListRemove checks the removal count passthrough; the sign convention
// itself lives on the server
func TestListRemove(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[string](db, "people")

	v := mustEncode(t, db, "v")
	mock.ExpectLRem(list.Key(), 0, v).SetVal(3)
	mock.ExpectLRem(list.Key(), -2, v).SetVal(2)

	removed, err := list.Remove(ctx, 0, "v")
	if err != nil || removed != 3 {
		t.Errorf("Remove(0) = %d, err %v", removed, err)
	}
	removed, err = list.Remove(ctx, -2, "v")
	if err != nil || removed != 2 {
		t.Errorf("Remove(-2) = %d, err %v", removed, err)
	}
	checkExpectations(t, mock)
}

// TestListInsert checks the pivot-found return value
func TestListInsert(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[string](db, "people")

	pivot := mustEncode(t, db, "pivot")
	value := mustEncode(t, db, "value")
	mock.ExpectLInsert(list.Key(), "BEFORE", pivot, value).SetVal(3)
	mock.ExpectLInsert(list.Key(), "AFTER", pivot, value).SetVal(-1)

	found, err := list.InsertBefore(ctx, "pivot", "value")
	if err != nil || !found {
		t.Errorf("InsertBefore: found=%v err=%v", found, err)
	}
	found, err = list.InsertAfter(ctx, "pivot", "value")
	if err != nil || found {
		t.Errorf("InsertAfter on missing pivot: found=%v err=%v", found, err)
	}
	checkExpectations(t, mock)
}

// TestRemoveIdempotent checks that removing a nonexistent collection
// succeeds silently
func TestRemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	db, mock := newTestDB(t)
	list, _ := GetList[string](db, "ghost")

	mock.ExpectDel(list.Key()).SetVal(0)

	if err := Remove(ctx, list); err != nil {
		t.Errorf("Remove of nonexistent key failed: %v", err)
	}
	checkExpectations(t, mock)
}
