package deque

import "iter"

// seek returns the node at index i, walking from whichever end of the
// chain is closer. On failure the failure flag is set.
func (d *Deque[T]) seek(i int) (*node[T], error) {
	if i < 0 || i >= d.size {
		return nil, d.report(ErrIndexOutOfRange)
	}

	tailDistance := d.size - i - 1
	if tailDistance < i {
		n := d.tail
		for range tailDistance {
			n = n.prev
		}
		return n, nil
	}

	n := d.head
	for range i {
		n = n.next
	}
	return n, nil
}

// ForEach calls f for |count| elements of the Deque starting with the
// element at index start. If count is positive, the walk goes towards
// the back of the Deque. If it is negative, it goes towards the front.
// If f returns false, the walk stops early. That is not considered a
// failure.
//
// The whole range is checked before f is called for the first time.
// ForEach returns [ErrInvalidRange] if count is zero or if the range
// would run off of either end of the Deque, and [ErrIndexOutOfRange]
// if start is not a valid index.
//
// f must not modify the Deque.
func (d *Deque[T]) ForEach(start, count int, f func(T) bool) error {
	if count == 0 {
		return d.report(ErrInvalidRange)
	}
	if start < 0 || start >= d.size {
		return d.report(ErrIndexOutOfRange)
	}

	// Compare against the room left in the walk direction rather than
	// computing the last index, which can overflow for extreme counts.
	if count > 0 {
		if count-1 > d.size-1-start {
			return d.report(ErrInvalidRange)
		}
	} else {
		if count < -start-1 {
			return d.report(ErrInvalidRange)
		}
	}

	n, err := d.seek(start)
	if err != nil {
		return err
	}

	step := func(n *node[T]) *node[T] { return n.next }
	remaining := count
	if count < 0 {
		step = func(n *node[T]) *node[T] { return n.prev }
		remaining = -count
	}

	for ; remaining > 0; remaining-- {
		if !f(n.val) {
			break
		}
		n = step(n)
	}

	d.failed = false
	return nil
}

// All returns an iterator over the indices and elements of the Deque
// from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := d.head; n != nil; n = n.next {
			if !yield(i, n.val) {
				return
			}
			i++
		}
	}
}

// Backward returns an iterator over the indices and elements of the
// Deque from back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := d.size - 1
		for n := d.tail; n != nil; n = n.prev {
			if !yield(i, n.val) {
				return
			}
			i--
		}
	}
}

// Values returns an iterator over the elements of the Deque from front
// to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := d.head; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}
