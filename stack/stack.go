// SPDX-License-Identifier: MIT

package stack

// LIFO is the capability the sorts in this package are restricted to.
type LIFO[T any] interface {
	// Push adds v on top.
	Push(v T)

	// Pop removes and returns the top value, or fails on an empty stack.
	Pop() (T, error)

	// Peek returns the top value without removing it, or fails on an
	// empty stack.
	Peek() (T, error)

	// IsEmpty reports whether the stack holds no values.
	IsEmpty() bool
}

// Stack is a slice-backed LIFO. The zero value is an empty stack ready to
// use. A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T // bottom at index 0, top at len-1
}

// New returns a stack holding items pushed in order, so the last item is
// on top.
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(items))}
	for _, v := range items {
		s.Push(v)
	}

	return s
}

// Push adds v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value.
// Returns ErrEmptyStack when there is nothing to pop.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmptyStack
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero // drop the reference for the GC
	s.items = s.items[:last]

	return v, nil
}

// Peek returns the top value without removing it.
// Returns ErrEmptyStack when the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no values. A nil *Stack is empty.
func (s *Stack[T]) IsEmpty() bool {
	return s == nil || len(s.items) == 0
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Items returns a copy of the values ordered from top to bottom.
func (s *Stack[T]) Items() []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.items[len(s.items)-1-i]
	}

	return out
}
