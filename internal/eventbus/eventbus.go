// ABOUTME: Event bus for mapping-collection change notifications
// ABOUTME: Subscribe/unsubscribe with goroutine-safe synchronous delivery

package eventbus

import "sync"

// Kind classifies a mapping change.
type Kind string

const (
	KindEnabled       Kind = "enabled"
	KindDisabled      Kind = "disabled"
	KindLevelChanged  Kind = "level_changed"
	KindTargetChanged Kind = "target_changed"
	KindCustomAdded   Kind = "custom_added"
	KindCustomRemoved Kind = "custom_removed"
	KindMigrated      Kind = "migrated"
	KindReloaded      Kind = "reloaded"
)

// Event describes one change to the mapping collection. SourceModel and
// Target are empty for collection-wide events (migrated, reloaded).
type Event struct {
	Kind        Kind
	SourceModel string
	Target      string
}

// Handler is a callback for mapping events.
type Handler func(Event)

// Bus delivers mapping events to registered handlers. Delivery is
// synchronous in Publish's goroutine; handlers must not block.
type Bus struct {
	mu       sync.RWMutex
	handlers map[int]Handler
	nextID   int
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[int]Handler)}
}

// Subscribe registers a handler and returns an unsubscribe function.
func (b *Bus) Subscribe(handler Handler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}

// Publish sends an event to all registered handlers. A nil bus is a no-op
// so components can treat the bus as optional.
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Count returns the number of registered handlers.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
