package queue

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewLinked(t *testing.T) {
	q := NewLinked[string]()
	require.NotNil(t, q)

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, uint64(math.MaxUint64), q.Capacity())
}

func TestLinked_ZeroValue(t *testing.T) {
	var q Linked[int]

	assert.True(t, q.IsEmpty())
	assert.True(t, q.Enqueue(7))

	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

// =============================================================================
// Enqueue / Dequeue Tests
// =============================================================================

func TestLinked_FIFOOrder(t *testing.T) {
	tests := []struct {
		name  string
		items []string
	}{
		{"single_item", []string{"alice"}},
		{"three_items", []string{"alice", "bob", "carol"}},
		{"duplicates_kept", []string{"bob", "bob", "alice", "bob"}},
		{"empty_strings", []string{"", "x", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewLinked[string]()
			for _, item := range tt.items {
				require.True(t, q.Enqueue(item))
			}
			assert.Equal(t, len(tt.items), q.Len())

			var got []string
			for {
				item, ok := q.Dequeue()
				if !ok {
					break
				}
				got = append(got, item)
			}

			assert.Equal(t, tt.items, got)
			assert.True(t, q.IsEmpty())
			assert.Equal(t, 0, q.Len())
		})
	}
}

func TestLinked_DequeueEmpty(t *testing.T) {
	q := NewLinked[string]()

	v, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestLinked_InterleavedOperations(t *testing.T) {
	q := NewLinked[int]()

	q.Enqueue(1)
	q.Enqueue(2)
	v, _ := q.Dequeue()
	assert.Equal(t, 1, v)

	q.Enqueue(3)
	v, _ = q.Dequeue()
	assert.Equal(t, 2, v)
	v, _ = q.Dequeue()
	assert.Equal(t, 3, v)

	// Tail must be reset once the list drains.
	q.Enqueue(4)
	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.True(t, q.IsEmpty())
}

// =============================================================================
// Peek / All Tests
// =============================================================================

func TestLinked_Peek(t *testing.T) {
	q := NewLinked[string]()

	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue("first")
	q.Enqueue("second")

	v, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 2, q.Len())
}

func TestLinked_All(t *testing.T) {
	q := NewLinked[string]()
	assert.Empty(t, slices.Collect(q.All()))

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(q.All()))
	// Iteration does not consume.
	assert.Equal(t, 3, q.Len())
}

func TestLinked_AllStopsEarly(t *testing.T) {
	q := NewLinked[int]()
	for i := range 5 {
		q.Enqueue(i)
	}

	var seen []int
	for v := range q.All() {
		if v == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{0, 1}, seen)
}

// =============================================================================
// Clear Tests
// =============================================================================

func TestLinked_Clear(t *testing.T) {
	q := NewLinked[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	q.Clear()

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
	_, ok := q.Peek()
	assert.False(t, ok)

	q.Enqueue(9)
	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}
