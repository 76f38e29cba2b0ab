package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"menuvroom/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventDirectoryScanned = domain.EventDirectoryScanned
	EventDirectorySkipped = domain.EventDirectorySkipped
	EventEntrySkipped     = domain.EventEntrySkipped
	EventCacheLoaded      = domain.EventCacheLoaded
	EventCacheRebuilt     = domain.EventCacheRebuilt
	EventRecordRejected   = domain.EventRecordRejected
	EventLaunchFailed     = domain.EventLaunchFailed
	EventSessionEnded     = domain.EventSessionEnded
)

// Re-export domain event types
type DirectoryScannedEvent = domain.DirectoryScannedEvent
type DirectorySkippedEvent = domain.DirectorySkippedEvent
type EntrySkippedEvent = domain.EntrySkippedEvent
type CacheLoadedEvent = domain.CacheLoadedEvent
type CacheRebuiltEvent = domain.CacheRebuiltEvent
type RecordRejectedEvent = domain.RecordRejectedEvent
type LaunchFailedEvent = domain.LaunchFailedEvent
type SessionEndedEvent = domain.SessionEndedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously, in publish order, on the caller's
// goroutine. Handlers must not block.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	// Copy so handlers may unsubscribe while being called
	handlersCopy := make([]subscription, len(handlers))
	copy(handlersCopy, handlers)
	b.mu.RUnlock()

	for _, sub := range handlersCopy {
		b.call(sub.handler, event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		handlers := b.handlers[eventType]
		for i, sub := range handlers {
			if sub.id == id {
				b.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
				break
			}
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Publish is a nil-safe helper for components that take an optional bus
func Publish(b EventBus, event DomainEvent) {
	if b == nil {
		return
	}
	b.Publish(event)
}
