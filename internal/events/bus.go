package events

import "sync"

// ProductCreated is published after a product document has been inserted.
type ProductCreated struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Bus is an in-process publish/subscribe channel for catalog events.
// Publishing never blocks; subscribers with a full buffer miss the event.
type Bus struct {
	subscribers map[chan ProductCreated]struct{}
	mutex       sync.RWMutex
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[chan ProductCreated]struct{})}
}

// Subscribe registers a new subscriber and returns its channel. The channel
// is buffered so slow consumers do not stall publishers.
func (b *Bus) Subscribe() chan ProductCreated {
	ch := make(chan ProductCreated, 64)

	b.mutex.Lock()
	b.subscribers[ch] = struct{}{}
	b.mutex.Unlock()

	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Bus) Unsubscribe(ch chan ProductCreated) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, ok := b.subscribers[ch]; !ok {
		return
	}

	delete(b.subscribers, ch)
	close(ch)
}

// Publish delivers the event to every subscriber that has buffer space.
func (b *Bus) Publish(event ProductCreated) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// subscriber buffer full, drop
		}
	}
}
