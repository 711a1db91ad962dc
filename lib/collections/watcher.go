package collections

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/syntacticsugarglider/redis-backed/lib/session"
	"go.uber.org/zap"
)

// --------------------------------------------------------------------------
// Watcher
// --------------------------------------------------------------------------

// Item is one element of a watcher's event stream: a decoded event, or the
// error produced decoding one notification. An error item does not
// terminate the stream.
type Item[E any] struct {
	Event WatchEvent[E]
	Err   error
}

// receiveFunc blocks until the next raw notification payload arrives
type receiveFunc func(ctx context.Context) (string, error)

// Watcher is a live subscription to the change notifications of one key.
//
// A background producer goroutine owns a dedicated pubsub connection,
// blocks on it one message at a time, decodes each payload and hands the
// result to the Events channel. Events are delivered in the order the redis
// channel delivered them.
//
// If the subscription fails underneath the watcher, the Events channel is
// closed and Err reports the terminal error. Callers must Close the watcher
// when done with it; otherwise its producer goroutine and subscription
// persist for the lifetime of the Database.
type Watcher[E any] struct {
	events chan Item[E]
	queue  *eventQueue[E] // nil when the channel is bounded
	done   chan struct{}  // closed by Close, drops undelivered items

	cancel    context.CancelFunc
	stop      func() error // closes the pubsub subscription
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error

	db    *session.Database
	regID uint64

	errMu sync.Mutex
	err   error
}

// Watch begins watching the collection's key for changes and updates. Each
// call creates an independent watcher with its own background subscription;
// multiple watchers may exist on the same key simultaneously.
//
// The server only publishes the events watchers rely on when keyspace
// notifications are enabled (see session.Database.EnableNotifications).
func Watch[E any](ctx context.Context, c Watchable[E]) (*Watcher[E], error) {
	db := c.Database()
	channel := fmt.Sprintf("__keyspace@%d__:%s", db.Handle().DB(), c.Key())

	pubsub := db.Handle().Client().Subscribe(ctx, channel)
	// Confirm the subscription before returning so that no event published
	// after this call returns can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, newTransportError(fmt.Sprintf("SUBSCRIBE %s", channel), err)
	}
	zap.S().Debugf("collections: watching %s", channel)

	receive := func(ctx context.Context) (string, error) {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			return "", err
		}
		return msg.Payload, nil
	}
	return newWatcher[E](c, receive, pubsub.Close), nil
}

// newWatcher wires the producer, the bridge and the teardown registration.
// Split from Watch so the bridge can be exercised without a live server.
func newWatcher[E any](c Watchable[E], receive receiveFunc, stop func() error) *Watcher[E] {
	db := c.Database()
	w := &Watcher[E]{
		done: make(chan struct{}),
		stop: stop,
		db:   db,
	}
	if buffer := db.EventBuffer(); buffer > 0 {
		w.events = make(chan Item[E], buffer)
	} else {
		w.events = make(chan Item[E])
		w.queue = newEventQueue[E]()
		go w.forward()
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.regID = db.RegisterCloser(w)
	go w.produce(ctx, c, receive)
	return w
}

// Events returns the stream of decoded notifications. The channel is closed
// when the watcher is closed or its subscription terminates; after it
// closes, Err distinguishes the two.
func (w *Watcher[E]) Events() <-chan Item[E] {
	return w.events
}

// Err returns the terminal error of the watcher. It is non-nil only after
// Events has been closed by a subscription failure.
func (w *Watcher[E]) Err() error {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	return w.err
}

// Close stops the producer goroutine, releases the subscription and
// unregisters the watcher from its Database. Undelivered events are
// dropped. Close is idempotent.
func (w *Watcher[E]) Close() error {
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		close(w.done)
		w.cancel()
		if w.stop != nil {
			w.closeErr = w.stop()
		}
		w.db.UnregisterCloser(w.regID)
	})
	return w.closeErr
}

// --------------------------------------------------------------------------
// Producer Side
// --------------------------------------------------------------------------

// produce blocks retrieving one notification at a time, decodes it and
// emits the result. It runs until Close or a receive failure.
func (w *Watcher[E]) produce(ctx context.Context, c Watchable[E], receive receiveFunc) {
	for {
		payload, err := receive(ctx)
		if err != nil {
			if !w.closed.Load() {
				// The subscription died underneath us. Surface a typed
				// terminal error through the stream instead of aborting
				// the process.
				w.setErr(newTransportError(
					fmt.Sprintf("%s watcher for %s disconnected", c.Kind(), c.Key()), err))
				zap.S().Warnf("collections: watcher for %s terminated: %v", c.Key(), err)
			}
			w.finish()
			return
		}
		event, perr := parseWatchEvent(c, payload)
		w.emit(ctx, Item[E]{Event: event, Err: perr})
	}
}

// emit hands one item to the consumer side. In bounded mode a full channel
// blocks the producer (backpressure); in unbounded mode push never blocks.
func (w *Watcher[E]) emit(ctx context.Context, item Item[E]) {
	if w.queue != nil {
		w.queue.push(item)
		return
	}
	select {
	case w.events <- item:
	case <-ctx.Done():
	}
}

// finish ends the stream once the producer has stopped
func (w *Watcher[E]) finish() {
	if w.queue != nil {
		w.queue.close()
		return
	}
	close(w.events)
}

func (w *Watcher[E]) setErr(err error) {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	if w.err == nil {
		w.err = err
	}
}

// --------------------------------------------------------------------------
// Consumer Side (unbounded mode)
// --------------------------------------------------------------------------

// forward drains the unbounded queue into the events channel in order,
// parking on the queue's wake signal whenever it is empty. After Close it
// stops delivering and ends the stream immediately.
func (w *Watcher[E]) forward() {
	for {
		item, ok, closed := w.queue.pop()
		if ok {
			select {
			case w.events <- item:
				continue
			case <-w.done:
				close(w.events)
				return
			}
		}
		if closed {
			close(w.events)
			return
		}
		w.queue.wait()
	}
}

// --------------------------------------------------------------------------
// Unbounded Event Queue
// --------------------------------------------------------------------------

// eventQueue is the unbounded bridge between a watcher's producer goroutine
// and its event channel: push never blocks, so a fast-publishing key grows
// client memory without limit. This is the documented default trade-off;
// bound it with Config.EventBuffer.
type eventQueue[E any] struct {
	mu     sync.Mutex
	items  []Item[E]
	closed bool
	wake   chan struct{}
}

func newEventQueue[E any]() *eventQueue[E] {
	return &eventQueue[E]{wake: make(chan struct{}, 1)}
}

// push appends an item and signals the wake handle
func (q *eventQueue[E]) push(item Item[E]) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.signal()
}

// close marks the end of the queue; already queued items remain poppable
func (q *eventQueue[E]) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

func (q *eventQueue[E]) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// pop returns the next item if one is queued. When the queue is empty,
// closed reports whether the producer has finished.
func (q *eventQueue[E]) pop() (item Item[E], ok bool, closed bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) > 0 {
		item = q.items[0]
		q.items = q.items[1:]
		return item, true, false
	}
	return item, false, q.closed
}

// wait parks until the next push or close. The wake channel holds one
// buffered signal, so a push between pop and wait is never lost.
func (q *eventQueue[E]) wait() {
	<-q.wake
}
