// Package queue provides a typed FIFO queue on top of github.com/ef-ds/deque.
package queue

import "github.com/ef-ds/deque"

// Q is a generic FIFO queue. Enqueue and Dequeue are O(1).
type Q[T any] struct {
	d *deque.Deque
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{d: deque.New()}
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.d.PushBack(item)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Front returns the first item without removing it
func (q *Q[T]) Front() (T, bool) {
	v, ok := q.d.Front()
	if !ok {
		var zero T
		return zero, false
	}

	return v.(T), true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.d.Len()
}

// ForEach calls callback for every item from front to back without consuming the queue.
// Returning false from callback stops the iteration early.
func (q *Q[T]) ForEach(callback func(item T, index int) (keepGoing bool)) {
	n := q.d.Len()
	stopped := false
	for i := 0; i < n; i++ {
		v, _ := q.d.PopFront()
		q.d.PushBack(v)
		if !stopped && !callback(v.(T), i) {
			stopped = true
		}
	}
}

// Items returns a snapshot of the queued items from front to back
func (q *Q[T]) Items() []T {
	items := make([]T, 0, q.d.Len())
	q.ForEach(func(item T, _ int) bool {
		items = append(items, item)
		return true
	})

	return items
}
