package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubRegisterUnregister(t *testing.T) {
	h := NewHub()

	id1 := h.Register(nil)
	id2 := h.Register(nil)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, h.SubscriberCount())

	h.Unregister(id1)
	assert.Equal(t, 1, h.SubscriberCount())

	// unregistering twice is a no-op
	h.Unregister(id1)
	assert.Equal(t, 1, h.SubscriberCount())

	h.Close()
	assert.Equal(t, 0, h.SubscriberCount())
}

func TestHubBroadcastSkipsDeadConnections(t *testing.T) {
	h := NewHub()
	h.Register(nil)

	// must not panic with no writable subscribers
	h.Broadcast(map[string]any{"type": "slot_created"})
}
