package deque

// Find returns the index of the first element e, searching from the
// front, for which compare(v, e) returns zero. If there is no such
// element, it returns [InvalidIndex] and [ErrNotFound].
func (d *Deque[T]) Find(v T, compare func(a, b T) int) (int, error) {
	i := 0
	for n := d.head; n != nil; n = n.next {
		if compare(v, n.val) == 0 {
			d.failed = false
			return i, nil
		}
		i++
	}

	return InvalidIndex, d.report(ErrNotFound)
}

// Remove removes and returns the first element that Find would locate
// for v. If there is no such element, it returns [ErrNotFound].
func (d *Deque[T]) Remove(v T, compare func(a, b T) int) (r T, err error) {
	for n := d.head; n != nil; n = n.next {
		if compare(v, n.val) == 0 {
			d.failed = false
			return d.unlink(n), nil
		}
	}

	return r, d.report(ErrNotFound)
}

// RemoveFunc removes and returns the first element, searching from the
// front, for which match returns true. The second return is false if
// no element matched.
func (d *Deque[T]) RemoveFunc(match func(T) bool) (r T, ok bool) {
	for n := d.head; n != nil; n = n.next {
		if match(n.val) {
			d.failed = false
			return d.unlink(n), true
		}
	}

	d.failed = true
	return r, false
}
