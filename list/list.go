package list

import "iter"

// Keyed is implemented by records that carry an integer identity.
type Keyed interface {
	Key() int
}

// node is one link of the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked, append-ordered sequence of T addressed by a
// natural key of type K.
type List[T any, K comparable] struct {
	head *node[T]
	size int
	key  func(T) K
}

// New returns an empty List that identifies elements through key.
// A nil key panics: a List without a key contract cannot answer lookups.
func New[T any, K comparable](key func(T) K) *List[T, K] {
	if key == nil {
		panic("list: nil key accessor")
	}

	return &List[T, K]{key: key}
}

// NewKeyed returns an empty List of records identified by their Key().
func NewKeyed[T Keyed]() *List[T, int] {
	return New[T, int](func(v T) int { return v.Key() })
}

// NewOf returns an empty List of comparable values that act as their own key.
func NewOf[T comparable]() *List[T, T] {
	return New[T, T](func(v T) T { return v })
}

// KeyOf exposes the key accessor so callers can compare keys consistently.
func (l *List[T, K]) KeyOf(v T) K { return l.key(v) }

// Append adds v at the tail. It walks the chain to the last node.
// Complexity: O(n).
func (l *List[T, K]) Append(v T) {
	n := &node[T]{value: v}
	if l.head == nil {
		l.head = n
		l.size++

		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
	l.size++
}

// Remove deletes the first element whose key equals the key of v.
// It reports whether an element was removed.
func (l *List[T, K]) Remove(v T) bool {
	return l.RemoveKey(l.key(v))
}

// RemoveKey deletes the first element with key k and reports whether one was found.
func (l *List[T, K]) RemoveKey(k K) bool {
	var prev *node[T]
	for cur := l.head; cur != nil; cur = cur.next {
		if l.key(cur.value) == k {
			l.unlink(prev, cur)

			return true
		}
		prev = cur
	}

	return false
}

// RemoveAt deletes the element at index i and returns it.
// Out-of-range indexes return the zero value and false.
func (l *List[T, K]) RemoveAt(i int) (T, bool) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, false
	}
	var prev *node[T]
	cur := l.head
	for j := 0; j < i; j++ {
		prev = cur
		cur = cur.next
	}
	l.unlink(prev, cur)

	return cur.value, true
}

// unlink detaches cur, whose predecessor is prev (nil for the head).
func (l *List[T, K]) unlink(prev, cur *node[T]) {
	if prev == nil {
		l.head = cur.next
	} else {
		prev.next = cur.next
	}
	cur.next = nil
	l.size--
}

// Find returns the first element with key k.
func (l *List[T, K]) Find(k K) (T, bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if l.key(cur.value) == k {
			return cur.value, true
		}
	}
	var zero T

	return zero, false
}

// Contains reports whether an element with key k is stored.
func (l *List[T, K]) Contains(k K) bool {
	_, ok := l.Find(k)

	return ok
}

// Update replaces the first element with key k by fn(old) and reports whether
// an element was found. fn must not change the element's key.
func (l *List[T, K]) Update(k K, fn func(T) T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if l.key(cur.value) == k {
			cur.value = fn(cur.value)

			return true
		}
	}

	return false
}

// Len returns the number of stored elements.
func (l *List[T, K]) Len() int { return l.size }

// At returns the element at index i, or false when i is out of range.
func (l *List[T, K]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, false
	}
	cur := l.head
	for j := 0; j < i; j++ {
		cur = cur.next
	}

	return cur.value, true
}

// Clear drops every element.
func (l *List[T, K]) Clear() {
	l.head = nil
	l.size = 0
}

// Slice exports the elements, in order, into a fresh slice.
func (l *List[T, K]) Slice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// Reset clears the list and appends every element of values in order.
// Used to write back a sequence that was sorted outside the list.
func (l *List[T, K]) Reset(values []T) {
	l.Clear()
	var tail *node[T]
	for _, v := range values {
		n := &node[T]{value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
		l.size++
	}
}

// All iterates over (index, element) pairs in order.
// The list must not be mutated while iterating.
func (l *List[T, K]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(i, cur.value) {
				return
			}
			i++
		}
	}
}
