package sunaba

import "reflect"

// EventBus is a small, type-safe publish/subscribe bus for decoupling
// simulation systems from one another. A physics step can publish a
// contact event without knowing which systems care about it.
//
// Dispatch is synchronous and runs handlers in subscription order.
// Publish does not allocate, which keeps it usable from per-frame code.
// Like the World, the bus assumes a single-threaded caller.
//
// The zero value is ready to use.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers fn to be called for every published event of type
// T, after any handlers registered earlier.
func Subscribe[T any](bus *EventBus, fn func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], fn)
}

// Publish delivers event to every handler subscribed for type T. Events
// with no subscribers are dropped.
func Publish[T any](bus *EventBus, event T) {
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}
