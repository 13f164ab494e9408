package core

// KeyedSet is an insertion-stable mapping from monotonically increasing
// int64 keys to elements. It backs every signal's observer list.
//
// Keys are never reused within one KeyedSet instance. Iteration snapshots
// the current elements before invoking the visitor, so add/remove from
// within a callback never skips or double-visits remaining elements.
type KeyedSet[T any] struct {
	nextKey int64
	order   []int64
	items   map[int64]T
}

// NewKeyedSet creates an empty KeyedSet.
func NewKeyedSet[T any]() *KeyedSet[T] {
	return &KeyedSet[T]{
		items: make(map[int64]T),
	}
}

// Add inserts e and returns its key.
func (s *KeyedSet[T]) Add(e T) int64 {
	key := s.nextKey
	s.nextKey++

	s.items[key] = e
	s.order = append(s.order, key)

	return key
}

// Remove deregisters the element at key. Removing an unknown key is a no-op.
func (s *KeyedSet[T]) Remove(key int64) {
	if _, ok := s.items[key]; !ok {
		return
	}
	delete(s.items, key)

	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of currently registered elements.
func (s *KeyedSet[T]) Len() int {
	return len(s.order)
}

// Each invokes fn for every currently-registered element, in insertion
// order, over a snapshot taken before the first call.
func (s *KeyedSet[T]) Each(fn func(T)) {
	keys := make([]int64, len(s.order))
	copy(keys, s.order)

	for _, key := range keys {
		e, ok := s.items[key]
		if !ok {
			continue // removed mid-iteration
		}
		fn(e)
	}
}
