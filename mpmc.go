// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is a multi-producer multi-consumer bounded queue.
//
// Both cursors are CAS'd: a producer claims a slot by CAS on tail, a
// consumer claims one by CAS on head. Per-cell sequence numbers give full
// ABA safety across laps, independent of whichever cursor last touched
// the slot.
type MPMC[T any] struct {
	_    pad
	tail atomix.Uint64 // producers CAS here
	_    pad
	head atomix.Uint64 // consumers CAS here
	_    pad
	ring[T]
}

// NewMPMC creates a new MPMC queue. Capacity rounds up to the next power
// of two. Returns ErrInvalidCapacity if capacity is not positive.
func NewMPMC[T any](capacity int) (*MPMC[T], error) {
	r, err := newRing[T](capacity)
	if err != nil {
		return nil, err
	}
	return &MPMC[T]{ring: r}, nil
}

// Offer adds an element to the queue (multiple producers safe).
// Returns ErrWouldBlock if the queue is full, ErrInvalidArgument if elem
// is nil.
func (q *MPMC[T]) Offer(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	sw := spin.Wait{}
	for {
		tail := q.tail.LoadAcquire()
		c := q.at(tail)
		seq := c.loadSeqAcquire()
		diff := int64(seq) - int64(tail)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				c.storeValue(*elem)
				c.storeSeqRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Poll removes and returns an element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPMC[T]) Poll() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		c := q.at(head)
		seq := c.loadSeqAcquire()
		diff := int64(seq) - int64(head+1)

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				v := c.loadValue()
				c.clearValue()
				c.storeSeqRelease(head + q.capacity)
				return v, nil
			}
		} else if diff < 0 {
			var zero T
			return zero, ErrWouldBlock
		}
		sw.Once()
	}
}

// Peek returns the next element without removing it, or
// (zero-value, ErrWouldBlock) if the queue is empty. Best-effort: racing
// consumers may remove the observed element before the caller acts on it.
func (q *MPMC[T]) Peek() (T, error) {
	head := q.head.LoadAcquire()
	c := q.at(head)
	if c.loadSeqAcquire() != head+1 {
		var zero T
		return zero, ErrWouldBlock
	}
	return c.loadValue(), nil
}

// IsEmpty reports whether the queue had no ready element at the moment
// of the call.
func (q *MPMC[T]) IsEmpty() bool {
	head := q.head.LoadAcquire()
	return q.at(head).loadSeqAcquire() != head+1
}

// Size returns an approximate element count, clamped to [0, math.MaxInt32].
func (q *MPMC[T]) Size() int {
	return clampSize(q.tail.LoadAcquire(), q.head.LoadAcquire())
}
