package storage

import (
	"fmt"
	"reflect"
)

// Handle is a shared reference into a store slot.
//
// Handles are cheap to copy; every copy refers to the same slot and shares
// the store's backing memory, so a handle stays usable even after the Store
// value that produced it has gone out of scope.
//
// Equality of handles, via Equal, is defined by the *value* of the objects
// they reference: two handles to structurally equal objects compare equal
// even if the objects live in different slots. This is distinct from the
// identity of the objects. Equal-but-not-identical objects can be a sign of
// a bug in higher-level code, so identity is available separately, through
// ID and through HandleWrapper.
type Handle[T any] struct {
	inner *storeInner[T]
	index int
	slot  *slot[T]
}

// ID returns the identity of the referenced slot. IDs are unique and
// totally ordered across all stores for the lifetime of the process. They
// are not stable across runs and must not be persisted.
func (h Handle[T]) ID() ObjectID {
	return ObjectID{store: h.inner.seq, slot: uint64(h.index)}
}

// Deref returns the object this handle refers to.
//
// The returned object must be treated as immutable. To change an object,
// reserve a new slot and insert the replacement there, so existing handles
// keep observing the value they were created for.
//
// Dereferencing a handle whose slot was reserved but never filled is a
// contract violation and panics.
func (h Handle[T]) Deref() *T {
	if !h.slot.filled {
		panic(fmt.Sprintf(
			"storage: handle %s references an object that was never inserted",
			h.ID()))
	}
	return &h.slot.value
}

// CloneObject returns a shallow copy of the referenced object.
func (h Handle[T]) CloneObject() T {
	return *h.Deref()
}

// Equal reports whether the objects referenced by both handles are
// structurally equal. Both slots must be filled.
func (h Handle[T]) Equal(other Handle[T]) bool {
	return reflect.DeepEqual(h.Deref(), other.Deref())
}

// Same reports whether both handles reference the same slot, i.e. whether
// the referenced objects are identical rather than merely equal.
func (h Handle[T]) Same(other Handle[T]) bool {
	return h.ID() == other.ID()
}

func (h Handle[T]) String() string {
	var zero T
	return fmt.Sprintf("%T @ %s", zero, h.ID())
}

// HandleWrapper adapts a handle into an identity-keyed value.
//
// The wrapper is comparable: the == operator, and therefore use as a map
// key, compares the identity of the referenced slot, not the value of the
// object. Use it where structurally equal objects must remain distinct,
// e.g. when deduplicating by identity or detecting accidental duplicates.
type HandleWrapper[T any] struct {
	Handle Handle[T]
}

// Wrap wraps a handle for identity-based comparison.
func Wrap[T any](handle Handle[T]) HandleWrapper[T] {
	return HandleWrapper[T]{Handle: handle}
}

// ID returns the identity of the wrapped handle's slot.
func (w HandleWrapper[T]) ID() ObjectID {
	return w.Handle.ID()
}

// Deref returns the object the wrapped handle refers to.
func (w HandleWrapper[T]) Deref() *T {
	return w.Handle.Deref()
}

// Less orders wrappers by slot identity. The order is canonical but carries
// no geometric meaning.
func (w HandleWrapper[T]) Less(other HandleWrapper[T]) bool {
	return w.ID().Less(other.ID())
}
