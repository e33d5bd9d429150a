package events

import "testing"

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	first := bus.Subscribe()
	second := bus.Subscribe()

	event := ProductCreated{ID: "66b1f0a9c4d1a2b3c4d5e6f7", Title: "Blue Mug", Category: "kitchen"}
	bus.Publish(event)

	if got := <-first; got != event {
		t.Fatalf("First subscriber got %+v, want %+v", got, event)
	}
	if got := <-second; got != event {
		t.Fatalf("Second subscriber got %+v, want %+v", got, event)
	}
}

func TestPublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	bus := NewBus()
	bus.Publish(ProductCreated{ID: "abc"})
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe()
	bus.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Fatalf("Expected channel to be closed after Unsubscribe")
	}

	// a second Unsubscribe of the same channel is a no-op
	bus.Unsubscribe(ch)
}

func TestPublishDropsWhenSubscriberBufferFull(t *testing.T) {
	bus := NewBus()
	ch := bus.Subscribe()

	for i := 0; i < cap(ch)+10; i++ {
		bus.Publish(ProductCreated{ID: "abc"})
	}

	if len(ch) != cap(ch) {
		t.Fatalf("Expected buffer to hold %d events, got %d", cap(ch), len(ch))
	}
}
