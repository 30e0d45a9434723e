package events

import (
	"fmt"
	"sync"
)

// Bus delivers events to listeners keyed by the event's Go type name.
// Handlers run synchronously, in subscription order, on the publishing
// goroutine, so a listener always observes events in the order they happened.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type.
// Use TypeOf on a zero value to get the key, e.g. TypeOf(sorting.SortChangedEvent{}).
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	// Lock released so handlers may publish or subscribe themselves
	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the key an event is published under
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
