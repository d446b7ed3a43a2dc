package stack

import "iter"

// Stack is an unbounded LIFO stack backed by a slice.
// The zero value is an empty stack ready to use. It is NOT thread-safe.
type Stack[T any] struct {
	items []T
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item. Returns (zero, false) if empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}

	item := s.items[n-1]
	s.items[n-1] = zero // release reference held by the backing array
	s.items = s.items[:n-1]
	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, false
	}
	return s.items[n-1], true
}

// All iterates from top to bottom without consuming.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear drops every item.
func (s *Stack[T]) Clear() { s.items = nil }
