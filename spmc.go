// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SPMC is a single-producer multi-consumer bounded queue.
//
// The single producer never CASes: it owns tail outright. Consumers claim
// a slot by CAS on head, then release-publish the cell's sequence number
// to free it for the next lap.
type SPMC[T any] struct {
	_    pad
	head atomix.Uint64 // consumers CAS here
	_    pad
	tail atomix.Uint64 // producer writes here
	_    pad
	ring[T]
}

// NewSPMC creates a new SPMC queue. Capacity rounds up to the next power
// of two. Returns ErrInvalidCapacity if capacity is not positive.
func NewSPMC[T any](capacity int) (*SPMC[T], error) {
	r, err := newRing[T](capacity)
	if err != nil {
		return nil, err
	}
	return &SPMC[T]{ring: r}, nil
}

// Offer adds an element to the queue (single producer only).
// Returns ErrWouldBlock if the queue is full, ErrInvalidArgument if elem
// is nil.
func (q *SPMC[T]) Offer(elem *T) error {
	if elem == nil {
		return ErrInvalidArgument
	}

	tail := q.tail.LoadRelaxed()
	c := q.at(tail)
	if c.loadSeqAcquire() != tail {
		return ErrWouldBlock
	}

	c.storeValue(*elem)
	c.storeSeqRelease(tail + 1)
	q.tail.StoreRelease(tail + 1)
	return nil
}

// Poll removes and returns an element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPMC[T]) Poll() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadAcquire()
		c := q.at(head)
		seq := c.loadSeqAcquire()

		if seq == head+1 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				v := c.loadValue()
				c.clearValue()
				c.storeSeqRelease(head + q.capacity)
				return v, nil
			}
		} else if seq < head+1 {
			var zero T
			return zero, ErrWouldBlock
		}
		sw.Once()
	}
}

// Peek returns the next element without removing it, or
// (zero-value, ErrWouldBlock) if the queue is empty. Best-effort: racing
// consumers may remove the observed element before the caller acts on it.
func (q *SPMC[T]) Peek() (T, error) {
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
func (q *SPMC[T]) IsEmpty() bool {
	head := q.head.LoadAcquire()
	return q.at(head).loadSeqAcquire() != head+1
}

// Size returns an approximate element count, clamped to [0, math.MaxInt32].
func (q *SPMC[T]) Size() int {
	return clampSize(q.tail.LoadAcquire(), q.head.LoadAcquire())
}
