// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPSC is a multi-producer single-consumer bounded queue.
//
// Producers claim a slot by CAS on tail, then release-publish the cell's
// sequence number. The single consumer never CASes: it owns head outright
// and advances it with a plain store once it observes the cell it expects.
type MPSC[T any] struct {
	_    pad
	head atomix.Uint64 // consumer reads from here
	_    pad
	tail atomix.Uint64 // producers CAS here
	_    pad
	ring[T]
}

// NewMPSC creates a new MPSC queue. Capacity rounds up to the next power
// of two. Returns ErrInvalidCapacity if capacity is not positive.
func NewMPSC[T any](capacity int) (*MPSC[T], error) {
	r, err := newRing[T](capacity)
	if err != nil {
		return nil, err
	}
	return &MPSC[T]{ring: r}, nil
}

// Offer adds an element to the queue (multiple producers safe).
// Returns ErrWouldBlock if the queue is full, ErrInvalidArgument if elem
// is nil.
func (q *MPSC[T]) Offer(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		c := q.at(tail)
		seq := c.loadSeqAcquire()

		if seq == tail {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				c.storeValue(*elem)
				c.storeSeqRelease(tail + 1)
				return nil
			}
		} else if seq < tail {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Poll removes and returns an element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPSC[T]) Poll() (T, error) {
	head := q.head.LoadRelaxed()
	c := q.at(head)
	if c.loadSeqAcquire() != head+1 {
		var zero T
		return zero, ErrWouldBlock
	}

	v := c.loadValue()
	c.clearValue()
	c.storeSeqRelease(head + q.capacity)
	q.head.StoreRelease(head + 1)
	return v, nil
}

// Peek returns the next element without removing it, or
// (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPSC[T]) Peek() (T, error) {
	head := q.head.LoadRelaxed()
	c := q.at(head)
	if c.loadSeqAcquire() != head+1 {
		var zero T
		return zero, ErrWouldBlock
	}
	return c.loadValue(), nil
}

// IsEmpty reports whether the queue had no ready element at the moment
// of the call.
func (q *MPSC[T]) IsEmpty() bool {
	head := q.head.LoadRelaxed()
	return q.at(head).loadSeqAcquire() != head+1
}

// Size returns an approximate element count, clamped to [0, math.MaxInt32].
func (q *MPSC[T]) Size() int {
	return clampSize(q.tail.LoadAcquire(), q.head.LoadAcquire())
}

// Drain delivers up to max items to cb on the calling goroutine, stopping
// early if the queue becomes empty or cb returns a non-nil error.
// Returns the count of items removed and the first error encountered.
func (q *MPSC[T]) Drain(cb func(T) error, max int) (int, error) {
	if cb == nil || max <= 0 {
		return 0, ErrInvalidArgument
	}
	drained := 0
	for drained < max {
		v, err := q.Poll()
		if err != nil {
			break
		}
		drained++
		if err := cb(v); err != nil {
			return drained, err
		}
	}
	return drained, nil
}
