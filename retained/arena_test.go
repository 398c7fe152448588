package retained

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaGenerations(t *testing.T) {
	var a arena
	first := a.insert(&Node{})
	require.False(t, first.IsZero())

	_, ok := a.remove(first)
	require.True(t, ok)

	// The slot is reused but the stale id must not resolve.
	second := a.insert(&Node{})
	assert.Equal(t, first.index, second.index)
	assert.NotEqual(t, first, second)

	_, ok = a.get(first)
	assert.False(t, ok, "stale id resolved")
	_, ok = a.get(second)
	assert.True(t, ok)

	_, ok = a.remove(first)
	assert.False(t, ok, "stale id removed a live node")
	assert.Equal(t, 1, a.len())
}

func TestArenaZeroID(t *testing.T) {
	var a arena
	a.insert(&Node{})
	_, ok := a.get(NodeID{})
	assert.False(t, ok)
	assert.Equal(t, "NodeID(none)", NodeID{}.String())
}

func TestArenaIDsInSlotOrder(t *testing.T) {
	var a arena
	ids := []NodeID{a.insert(&Node{}), a.insert(&Node{}), a.insert(&Node{})}
	a.remove(ids[1])
	assert.Equal(t, []NodeID{ids[0], ids[2]}, a.ids())
}
