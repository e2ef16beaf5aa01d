package deque

import "cmp"

// Ascending compares a and b in ascending order. It can be passed to
// any method that takes a comparison function.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// Descending compares a and b in descending order.
func Descending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(b, a)
}

// Sort sorts the Deque in place using a stable merge sort that works
// directly on the chain, so no extra storage is allocated. compare
// must return a negative number if a sorts before b, a positive number
// if it sorts after b, and zero if they are equivalent. Equivalent
// elements keep their relative order.
//
// Sort returns [ErrEmpty] if the Deque is empty.
func (d *Deque[T]) Sort(compare func(a, b T) int) error {
	if d.head == nil {
		return d.report(ErrEmpty)
	}

	front := d.head
	var back *node[T]
	for width, runs := 1, 0; runs != 1; width <<= 1 {
		left := front
		front, back, runs = nil, nil, 0

		for left != nil {
			runs++

			right := left.next
			lsize := 1
			for lsize < width && right != nil {
				lsize++
				right = right.next
			}
			rsize := width

			for lsize > 0 || (rsize > 0 && right != nil) {
				var picked *node[T]
				if lsize > 0 && (rsize == 0 || right == nil || compare(left.val, right.val) <= 0) {
					picked = left
					left = left.next
					lsize--
				} else {
					picked = right
					right = right.next
					rsize--
				}

				if back == nil {
					front = picked
				} else {
					back.next = picked
				}
				picked.prev = back
				back = picked
			}

			left = right
		}

		back.next = nil
	}

	d.head = front
	d.tail = back
	d.failed = false
	return nil
}

// InsertSorted inserts v into the Deque at a position that keeps it
// ordered by compare and returns the index that v was inserted at. The
// Deque is assumed to already be sorted by compare. If it isn't, v is
// placed before the first element from the second onwards that doesn't
// compare less than it.
//
// Values that compare equal to the first element are inserted at the
// front and values that compare equal to the last element are inserted
// at the back.
func (d *Deque[T]) InsertSorted(v T, compare func(a, b T) int) int {
	if d.head == nil || compare(v, d.head.val) <= 0 {
		d.PushFront(v)
		return 0
	}
	if compare(v, d.tail.val) >= 0 {
		d.PushBack(v)
		return d.size - 1
	}

	i := 1
	n := d.head.next
	for n != d.tail && compare(n.val, v) < 0 {
		n = n.next
		i++
	}

	d.linkBefore(n, v)
	d.failed = false
	return i
}
