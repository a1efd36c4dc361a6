package container

import "github.com/samber/mo"

// NewStack returns a stack holding vals, the last one on top.
func NewStack[T any](vals ...T) *Stack[T] {
	return &Stack[T]{
		vals: append([]T(nil), vals...),
	}
}

// Stack is a LIFO container backed by a slice. The zero value is an empty
// stack ready to use. It is not safe for concurrent use.
type Stack[T any] struct {
	vals []T
}

func (s *Stack[T]) Empty() bool {
	return len(s.vals) == 0
}

func (s *Stack[T]) Len() int {
	return len(s.vals)
}

func (s *Stack[T]) Push(v T) {
	s.vals = append(s.vals, v)
}

// Pop removes and returns the top element, or None if the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if s.Empty() {
		return mo.None[T]()
	}

	last := len(s.vals) - 1
	top := s.vals[last]

	var zero T
	s.vals[last] = zero
	s.vals = s.vals[:last]

	return mo.Some(top)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s.Empty() {
		return mo.None[T]()
	}

	return mo.Some(s.vals[len(s.vals)-1])
}

// PeekRef returns a pointer to the top element. The pointer is valid until
// the next Push, Pop or Clear.
func (s *Stack[T]) PeekRef() mo.Option[*T] {
	if s.Empty() {
		return mo.None[*T]()
	}

	return mo.Some(&s.vals[len(s.vals)-1])
}

func (s *Stack[T]) Clear() {
	clear(s.vals)
	s.vals = s.vals[:0]
}

// Values returns a copy of the elements, bottom first.
func (s *Stack[T]) Values() []T {
	ret := make([]T, len(s.vals))
	copy(ret, s.vals)

	return ret
}
