package identity

import "sync"

type EventType string

const (
	SignedIn  EventType = "signed_in"
	SignedOut EventType = "signed_out"
)

// Event is a single auth-state change.
type Event struct {
	Type     EventType
	Identity *Identity
}

// DefaultBufferSize is the per-subscriber event buffer.
const DefaultBufferSize = 16

// Broadcaster fans auth-state events out to subscribers. It replaces the
// implicit callback subscription of a hosted auth SDK with an explicit
// stream: Subscribe returns a channel plus an unsubscribe func, and
// unsubscribing closes the channel so consumers can range over it.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

// Subscribe registers a new listener. The returned func releases the
// subscription; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, DefaultBufferSize)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, unsubscribe
}

// Publish delivers evt to every subscriber. Slow subscribers with a full
// buffer miss the event rather than blocking the publisher.
func (b *Broadcaster) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

// Len reports the number of active subscriptions.
func (b *Broadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
