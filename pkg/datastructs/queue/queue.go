package queue

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item at the tail.
	// Returns false only if a bounded queue is full.
	Enqueue(item T) bool

	// Dequeue removes and returns the head item.
	// Returns (zero, false) if the queue is empty.
	Dequeue() (T, bool)

	// Len returns the number of queued items.
	Len() int

	// Capacity returns the total capacity of the queue.
	Capacity() uint64
}
