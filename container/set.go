package container

import (
	"iter"
	"maps"
	"slices"
)

func NewSet[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		items: make(map[T]struct{}, capacity),
	}
}

// Set is an unordered collection of distinct values.
type Set[T comparable] struct {
	items map[T]struct{}
}

func (s *Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.items)
}

func (s *Set[T]) Delete(val T) {
	delete(s.items, val)
}

// Add inserts val and reports whether it was not already present.
func (s *Set[T]) Add(val T) bool {
	if s.Contains(val) {
		return false
	}

	s.items[val] = struct{}{}

	return true
}

func (s *Set[T]) Contains(val T) bool {
	_, ok := s.items[val]

	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

func (s *Set[T]) Slice() []T {
	return slices.Collect(s.All())
}
