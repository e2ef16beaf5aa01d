// Package cq implements a simple concurrent queue on top of a Deque.
package cq

import (
	"context"
	"iter"
	"sync"

	"deedles.dev/deque"
	"github.com/juju/errors"
)

// ErrStopped is returned when querying a Queue that has been stopped.
const ErrStopped = errors.ConstError("queue stopped")

// A Queue concurrently collects values and returns them in FIFO
// order. A zero value Queue is ready to use.
//
// The buffered values are held in a [deque.Deque] that is owned by a
// single goroutine, so the Queue itself needs no locking.
type Queue[T any] struct {
	start sync.Once

	done  chan struct{}
	close sync.Once

	add chan T
	get chan T
	len chan int
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.done = make(chan struct{})
		q.add = make(chan T)
		q.get = make(chan T)
		q.len = make(chan int)

		go q.run()
	})
}

// Stop stops the queue. It is safe to call more than once. Any values
// still buffered are discarded.
func (q *Queue[T]) Stop() {
	q.init()
	q.close.Do(func() {
		close(q.done)
	})
}

// Add returns a channel that enqueues values sent to it. This channel
// must not be closed.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

// Len returns the number of values currently buffered in the queue. It
// returns ctx.Err() if ctx is done first and [ErrStopped] if the queue
// has been stopped.
func (q *Queue[T]) Len(ctx context.Context) (int, error) {
	q.init()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-q.done:
		return 0, ErrStopped
	case n := <-q.len:
		return n, nil
	}
}

// Values returns an iterator that yields values from the queue until
// either the queue is stopped or the context is canceled.
func (q *Queue[T]) Values(ctx context.Context) iter.Seq[T] {
	q.init()
	return func(yield func(T) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-q.get:
				if !ok || !yield(v) {
					return
				}
			}
		}
	}
}

func (q *Queue[T]) run() {
	defer func() {
		close(q.get)
	}()

	var s deque.Deque[T]
	var get chan T

	for {
		// Front of an empty Deque is the zero value, which is never sent
		// because get is nil in that case.
		next, _ := s.Front()

		select {
		case <-q.done:
			s.Clear()
			return

		case v := <-q.add:
			s.PushBack(v)
			get = q.get

		case get <- next:
			s.PopFront()
			if s.Empty() {
				get = nil
			}

		case q.len <- s.Len():
		}
	}
}
