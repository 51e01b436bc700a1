package model

// Entity is anything stored in a collection under a stable integer id.
type Entity interface {
	EntityID() int
}

// NextID returns max(id)+1, or 1 for an empty collection.
// All new entries get their id from here.
func NextID[T Entity](items []T) int {
	top := 0
	for _, it := range items {
		if id := it.EntityID(); id > top {
			top = id
		}
	}
	return top + 1
}

// Find returns the index of the entry with the given id, or -1.
func Find[T Entity](items []T, id int) int {
	for i, it := range items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

// Delete returns a copy of items without the entry matching id.
// Order is preserved. found is false (and the copy equals items) when
// nothing matches.
func Delete[T Entity](items []T, id int) (out []T, found bool) {
	out = make([]T, 0, len(items))
	for _, it := range items {
		if !found && it.EntityID() == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	return out, found
}
