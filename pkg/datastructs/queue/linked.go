package queue

import (
	"iter"
	"math"
)

var _ Queue[int] = (*Linked[int])(nil)

// node represents a single element in the linked queue.
type node[T any] struct {
	value T
	next  *node[T]
}

// Linked is an unbounded FIFO queue backed by a singly linked list.
// The zero value is an empty queue ready to use. It is NOT thread-safe.
type Linked[T any] struct {
	head  *node[T]
	tail  *node[T]
	count int
}

// NewLinked creates an empty linked queue.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// Enqueue appends item at the tail. It never fails.
func (q *Linked[T]) Enqueue(item T) bool {
	q.pushBack(&node[T]{value: item})
	return true
}

// Dequeue removes and returns the head item. Returns (zero, false) if empty.
func (q *Linked[T]) Dequeue() (T, bool) {
	n := q.popFront()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Peek returns the head item without removing it.
func (q *Linked[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.value, true
}

// All iterates items in insertion order without consuming them.
func (q *Linked[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := q.head; current != nil; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Len returns the number of queued items.
func (q *Linked[T]) Len() int {
	return q.count
}

// IsEmpty returns true if the queue holds no items.
func (q *Linked[T]) IsEmpty() bool {
	return q.head == nil
}

// Capacity reports math.MaxUint64, the queue is unbounded.
func (q *Linked[T]) Capacity() uint64 {
	return math.MaxUint64
}

// Clear drops every item.
func (q *Linked[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.count = 0
}

// popFront removes and returns the head node.
func (q *Linked[T]) popFront() *node[T] {
	if q.head == nil {
		return nil
	}

	front := q.head
	q.head = front.next
	if q.head == nil {
		q.tail = nil
	}

	front.next = nil
	q.count--

	return front
}

// pushBack adds a node to the tail of the list.
func (q *Linked[T]) pushBack(n *node[T]) {
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}

	n.next = nil
	q.tail = n
	q.count++
}
