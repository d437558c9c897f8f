package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireReturnsSameStoreForSession(t *testing.T) {
	m := NewManager(newFakeKV())
	defer m.Shutdown()

	a := m.Acquire(context.Background(), "u1")
	b := m.Acquire(context.Background(), "u1")

	assert.Same(t, a, b)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	m := NewManager(newFakeKV())
	defer m.Shutdown()

	alice := m.Acquire(context.Background(), "alice")
	bob := m.Acquire(context.Background(), "bob")

	alice.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 2)

	assert.Len(t, alice.Items(), 1)
	assert.Empty(t, bob.Items())
}

func TestReleaseDropsMemoryButKeepsStorage(t *testing.T) {
	kv := newFakeKV()
	m := NewManager(kv)
	defer m.Shutdown()

	s := m.Acquire(context.Background(), "u1")
	s.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 3)
	m.Release("u1")

	// A fresh sign-in gets a new store loaded from the persisted snapshot.
	next := m.Acquire(context.Background(), "u1")
	require.NotSame(t, s, next)

	items := next.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestReleaseUnknownUserIsNoOp(t *testing.T) {
	m := NewManager(newFakeKV())
	defer m.Shutdown()

	m.Release("nobody")
}

func TestAccountSwitchDoesNotLeakLines(t *testing.T) {
	kv := newFakeKV()
	m := NewManager(kv)
	defer m.Shutdown()

	alice := m.Acquire(context.Background(), "alice")
	alice.Add(testProduct("p1", "Organic Tomatoes", "2.99"), 2)
	m.Release("alice")

	bob := m.Acquire(context.Background(), "bob")
	assert.Empty(t, bob.Items())
}

func TestShutdownClosesAllSessions(t *testing.T) {
	kv := newFakeKV()
	m := NewManager(kv)

	m.Acquire(context.Background(), "alice").Add(testProduct("p1", "Organic Tomatoes", "2.99"), 1)
	m.Acquire(context.Background(), "bob").Add(testProduct("p2", "Alphonso Mangoes", "8.99"), 1)
	m.Shutdown()

	assert.Contains(t, kv.data, storageKey("alice"))
	assert.Contains(t, kv.data, storageKey("bob"))
}
