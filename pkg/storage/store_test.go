package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store := New[int]()

	handle := store.Reserve()
	store.Insert(handle, 42)

	require.Equal(t, 42, *handle.Deref())
	require.Equal(t, 42, handle.CloneObject())
}

func TestDerefBeforeInsertPanics(t *testing.T) {
	store := New[int]()
	handle := store.Reserve()

	require.Panics(t, func() {
		handle.Deref()
	})
}

func TestInsertForeignHandlePanics(t *testing.T) {
	a := New[int]()
	b := New[int]()

	handle := a.Reserve()

	require.Panics(t, func() {
		b.Insert(handle, 1)
	})
}

func TestDoubleInsertLastWriteWins(t *testing.T) {
	store := New[int]()
	handle := store.Reserve()

	store.Insert(handle, 1)
	store.Insert(handle, 2)

	require.Equal(t, 2, *handle.Deref())
}

func TestHandleCopiesShareSlot(t *testing.T) {
	store := New[string]()

	handle := store.Reserve()
	copied := handle

	// Filling through one handle is visible through the copy.
	store.Insert(handle, "solid")
	require.Equal(t, "solid", *copied.Deref())
	require.True(t, handle.Same(copied))
}

func TestHandleEqualityIsByValue(t *testing.T) {
	store := New[string]()

	a := store.Reserve()
	store.Insert(a, "vertex")
	b := store.Reserve()
	store.Insert(b, "vertex")
	c := store.Reserve()
	store.Insert(c, "edge")

	assert.True(t, a.Equal(b), "equal objects in different slots")
	assert.False(t, a.Same(b), "different slots are not identical")
	assert.False(t, a.Equal(c))
}

func TestHandleWrapperKeysByIdentity(t *testing.T) {
	store := New[string]()

	a := store.Reserve()
	store.Insert(a, "vertex")
	b := store.Reserve()
	store.Insert(b, "vertex")

	seen := map[HandleWrapper[string]]int{}
	seen[Wrap(a)]++
	seen[Wrap(b)]++
	seen[Wrap(a)]++

	// Equal objects, distinct identities: two map entries.
	require.Len(t, seen, 2)
	assert.Equal(t, 2, seen[Wrap(a)])
	assert.Equal(t, 1, seen[Wrap(b)])
}

func TestObjectIDsAreDistinctAndOrdered(t *testing.T) {
	store := New[int]()

	a := store.Reserve()
	b := store.Reserve()

	require.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.ID().Less(b.ID()))

	// IDs from a newer store order after IDs from an older one.
	other := New[int]()
	c := other.Reserve()
	assert.True(t, b.ID().Less(c.ID()))
}

func TestAllSkipsReservedSlots(t *testing.T) {
	store := New[int]()

	first := store.Reserve()
	store.Insert(first, 1)
	store.Reserve() // never filled
	third := store.Reserve()
	store.Insert(third, 3)

	var got []int
	for handle := range store.All() {
		got = append(got, *handle.Deref())
	}

	require.Equal(t, []int{1, 3}, got)
	require.Equal(t, 3, store.Len())
}

func TestSlotAddressesStableAcrossGrowth(t *testing.T) {
	store := New[int]()

	first := store.Reserve()
	store.Insert(first, 7)

	// Grow well past several block boundaries.
	for i := 0; i < blockSize*3; i++ {
		h := store.Reserve()
		store.Insert(h, i)
	}

	require.Equal(t, 7, *first.Deref())
}

func TestReserveSupportsSelfReferentialConstruction(t *testing.T) {
	// The practical shape of self-reference: an object that records its own
	// handle's identity before being inserted.
	type named struct {
		self ObjectID
	}

	store := New[named]()
	handle := store.Reserve()
	store.Insert(handle, named{self: handle.ID()})

	require.Equal(t, handle.ID(), handle.Deref().self)
}
