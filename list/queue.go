package list

// Queue is a FIFO queue backed by linked nodes with front and rear pointers.
type Queue[T any] struct {
	front *node[T]
	rear  *node[T]
	size  int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue adds v at the rear. Complexity: O(1).
func (q *Queue[T]) Enqueue(v T) {
	n := &node[T]{value: v}
	if q.rear == nil {
		q.front, q.rear = n, n
	} else {
		q.rear.next = n
		q.rear = n
	}
	q.size++
}

// Dequeue removes and returns the front element; ok is false on an empty queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.front == nil {
		return zero, false
	}
	n := q.front
	q.front = n.next
	if q.front == nil {
		q.rear = nil
	}
	n.next = nil
	q.size--

	return n.value, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.front == nil {
		return zero, false
	}

	return q.front.value, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.front == nil }
