// Package storage provides the append-only arena that backs every geometric
// object in kerf. Objects are inserted once and never mutated in place;
// handles into a store stay valid for the lifetime of the process, which is
// what allows an evolving object graph to share unchanged parts structurally.
package storage

import (
	"fmt"
	"iter"
	"sync/atomic"
)

// blockSize is the number of slots per backing block. Blocks are allocated
// with fixed capacity and never reallocated, so slot addresses are stable
// while the store grows.
const blockSize = 256

// storeSequence hands out a unique number per store, used to make ObjectIDs
// from different stores distinct and totally ordered.
var storeSequence atomic.Uint64

// slot is a single entry in a store. It starts out reserved (empty) and is
// filled exactly once by Insert.
type slot[T any] struct {
	value  T
	filled bool
}

// storeInner is the shared backing memory of a store. Handles keep a
// reference to it, so the memory outlives the Store value itself.
type storeInner[T any] struct {
	seq    uint64
	blocks [][]slot[T]
	count  int
}

// at returns the slot at the given index. Only indices previously returned
// by reserve are ever passed in, so this cannot go out of bounds.
func (s *storeInner[T]) at(index int) *slot[T] {
	return &s.blocks[index/blockSize][index%blockSize]
}

// reserve appends an empty slot and returns its index and address.
func (s *storeInner[T]) reserve() (int, *slot[T]) {
	if len(s.blocks) == 0 || len(s.blocks[len(s.blocks)-1]) == blockSize {
		s.blocks = append(s.blocks, make([]slot[T], 0, blockSize))
	}

	block := &s.blocks[len(s.blocks)-1]
	*block = append(*block, slot[T]{})

	index := s.count
	s.count++
	return index, &(*block)[len(*block)-1]
}

// Store is an append-only arena for objects of type T.
//
// A slot goes through a two-phase lifecycle: Reserve allocates it empty,
// Insert fills it. A Handle may exist for a reserved-but-unfilled slot,
// which is what enables self-referential construction sequences. Slots are
// never freed and filled slots are never overwritten through normal use, so
// concurrent readers never race a writer. Reserve/Insert pairs belong to a
// single logical owner; interleaving them across goroutines requires
// external synchronization.
type Store[T any] struct {
	inner *storeInner[T]
}

// New creates an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{
		inner: &storeInner[T]{seq: storeSequence.Add(1)},
	}
}

// Reserve allocates an empty slot and returns a handle to it. The handle
// must not be dereferenced until the slot has been filled via Insert.
func (s *Store[T]) Reserve() Handle[T] {
	index, slot := s.inner.reserve()
	return Handle[T]{inner: s.inner, index: index, slot: slot}
}

// Insert fills a previously reserved slot with an object. The handle must
// come from this store; passing a handle from another store is a contract
// violation and panics. Inserting twice through the same handle overwrites
// the earlier value (last write wins).
func (s *Store[T]) Insert(handle Handle[T], object T) {
	if handle.inner != s.inner {
		panic(fmt.Sprintf(
			"storage: handle %s belongs to a different store", handle.ID()))
	}
	handle.slot.value = object
	handle.slot.filled = true
}

// Len returns the number of reserved slots, filled or not.
func (s *Store[T]) Len() int {
	return s.inner.count
}

// All returns an iterator over handles to all filled objects, in insertion
// order. Reserved-but-unfilled slots are skipped.
func (s *Store[T]) All() iter.Seq[Handle[T]] {
	return func(yield func(Handle[T]) bool) {
		for index := 0; index < s.inner.count; index++ {
			slot := s.inner.at(index)
			if !slot.filled {
				continue
			}
			if !yield(Handle[T]{inner: s.inner, index: index, slot: slot}) {
				return
			}
		}
	}
}
