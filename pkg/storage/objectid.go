package storage

import "fmt"

// ObjectID identifies a store slot, and with it the object that lives (or
// will live) there. It is opaque, comparable, and totally ordered; the
// order is by store creation, then by slot, and carries no geometric
// meaning. IDs are only meaningful within a single process run.
type ObjectID struct {
	store uint64
	slot  uint64
}

// Less reports whether id orders before other.
func (id ObjectID) Less(other ObjectID) bool {
	if id.store != other.store {
		return id.store < other.store
	}
	return id.slot < other.slot
}

func (id ObjectID) String() string {
	return fmt.Sprintf("object %d.%d", id.store, id.slot)
}
