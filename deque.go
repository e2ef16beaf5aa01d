// Package deque provides a generic double-ended queue built on a
// doubly-linked chain of nodes.
//
// Pushing and popping at either end is O(1). Indexed operations walk
// the chain from whichever end is closer to the index. A Deque is not
// safe for concurrent use; see the cq and mailbox packages for
// concurrent wrappers.
package deque

import (
	"fmt"
	"strings"
)

// InvalidIndex is returned by [Deque.Find] when no element matches.
const InvalidIndex = -1

// A Deque is a double-ended queue. A zero value Deque is empty and
// ready to use.
//
// Every operation that can fail returns an error describing the
// failure and also records it in a flag that can be read, once, with
// [Deque.Failed]. Failing operations never modify the Deque.
type Deque[T any] struct {
	head, tail *node[T]
	size       int
	failed     bool
}

type node[T any] struct {
	val        T
	prev, next *node[T]
}

// New returns a new, empty Deque.
func New[T any]() *Deque[T] {
	return new(Deque[T])
}

// report records the outcome of an operation in the failure flag and
// returns err unchanged.
func (d *Deque[T]) report(err error) error {
	d.failed = err != nil
	return err
}

// Len returns the number of elements in the Deque.
func (d *Deque[T]) Len() int {
	d.failed = false
	return d.size
}

// Empty returns true if the Deque has no elements.
func (d *Deque[T]) Empty() bool {
	d.failed = false
	return d.size == 0
}

// Failed reports whether the most recent operation failed and resets
// the flag, so a second call returns false until another operation
// fails. Len and Empty also reset the flag.
func (d *Deque[T]) Failed() bool {
	failed := d.failed
	d.failed = false
	return failed
}

// Clear removes every element from the Deque. The Deque remains usable
// afterwards.
func (d *Deque[T]) Clear() {
	for n := d.head; n != nil; {
		next := n.next
		*n = node[T]{}
		n = next
	}

	d.head = nil
	d.tail = nil
	d.size = 0
	d.failed = false
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (v T, err error) {
	if d.head == nil {
		return v, d.report(ErrEmpty)
	}

	d.failed = false
	return d.head.val, nil
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (v T, err error) {
	if d.tail == nil {
		return v, d.report(ErrEmpty)
	}

	d.failed = false
	return d.tail.val, nil
}

// PushFront adds v to the front of the Deque.
func (d *Deque[T]) PushFront(v T) {
	n := &node[T]{val: v, next: d.head}
	if d.head != nil {
		d.head.prev = n
	} else {
		d.tail = n
	}
	d.head = n

	d.size++
	d.failed = false
}

// PushBack adds v to the back of the Deque.
func (d *Deque[T]) PushBack(v T) {
	n := &node[T]{val: v, prev: d.tail}
	if d.tail != nil {
		d.tail.next = n
	} else {
		d.head = n
	}
	d.tail = n

	d.size++
	d.failed = false
}

// PopFront removes the first element and returns it.
func (d *Deque[T]) PopFront() (v T, err error) {
	if d.head == nil {
		return v, d.report(ErrEmpty)
	}

	d.failed = false
	return d.unlink(d.head), nil
}

// PopBack removes the last element and returns it.
func (d *Deque[T]) PopBack() (v T, err error) {
	if d.tail == nil {
		return v, d.report(ErrEmpty)
	}

	d.failed = false
	return d.unlink(d.tail), nil
}

// At returns the element at index i, counting from zero at the front.
func (d *Deque[T]) At(i int) (v T, err error) {
	n, err := d.seek(i)
	if err != nil {
		return v, err
	}

	d.failed = false
	return n.val, nil
}

// Insert adds v before the element currently at index i. The index
// must refer to an existing element, so Insert can never add the first
// element to an empty Deque. Use PushFront or PushBack for that.
func (d *Deque[T]) Insert(i int, v T) error {
	n, err := d.seek(i)
	if err != nil {
		return err
	}

	d.linkBefore(n, v)
	d.failed = false
	return nil
}

// Erase removes the element at index i and returns it.
func (d *Deque[T]) Erase(i int) (v T, err error) {
	n, err := d.seek(i)
	if err != nil {
		return v, err
	}

	d.failed = false
	return d.unlink(n), nil
}

// Reverse reverses the order of the elements in place.
func (d *Deque[T]) Reverse() error {
	if d.head == nil {
		return d.report(ErrEmpty)
	}

	for n := d.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}
	d.head, d.tail = d.tail, d.head

	d.failed = false
	return nil
}

// String formats the elements of the Deque, front to back, the same
// way that fmt formats a slice.
func (d *Deque[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := d.head; n != nil; n = n.next {
		if n != d.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.val)
	}
	sb.WriteByte(']')
	return sb.String()
}

// linkBefore inserts a new node holding v directly before mark.
func (d *Deque[T]) linkBefore(mark *node[T], v T) {
	n := &node[T]{val: v, prev: mark.prev, next: mark}
	if mark.prev != nil {
		mark.prev.next = n
	} else {
		d.head = n
	}
	mark.prev = n
	d.size++
}

// unlink detaches n from the chain and returns its value. The node is
// zeroed so that it doesn't keep the value or its neighbors alive.
func (d *Deque[T]) unlink(n *node[T]) T {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		d.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		d.tail = n.prev
	}
	d.size--

	v := n.val
	*n = node[T]{}
	return v
}
