package sunaba

import "testing"

type contactEvent struct {
	A, B Entity
}

type despawnEvent struct {
	E Entity
}

// go test -run ^TestEventBusSubscribeAndPublish$ . -count 1
func TestEventBusSubscribeAndPublish(t *testing.T) {
	var bus EventBus
	var got []Entity
	Subscribe(&bus, func(ev contactEvent) {
		got = append(got, ev.A)
	})
	Subscribe(&bus, func(ev contactEvent) {
		got = append(got, ev.B)
	})

	Publish(&bus, contactEvent{A: 1, B: 2})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("handlers not called in subscription order, got %v", got)
	}
}

// go test -run ^TestEventBusMultipleTypes$ . -count 1
func TestEventBusMultipleTypes(t *testing.T) {
	var bus EventBus
	contacts := 0
	despawns := 0
	Subscribe(&bus, func(contactEvent) { contacts++ })
	Subscribe(&bus, func(despawnEvent) { despawns++ })

	Publish(&bus, contactEvent{})
	Publish(&bus, despawnEvent{})
	Publish(&bus, despawnEvent{})

	if contacts != 1 || despawns != 2 {
		t.Errorf("expected 1 contact and 2 despawns, got %d and %d", contacts, despawns)
	}
}

// go test -run ^TestEventBusNoSubscribers$ . -count 1
func TestEventBusNoSubscribers(t *testing.T) {
	var bus EventBus
	// Publishing with no subscribers is a no-op, not a panic.
	Publish(&bus, contactEvent{A: 1})
}
