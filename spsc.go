// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

import "code.hybscloud.com/atomix"

// SPSC is a single-producer single-consumer bounded queue.
//
// Neither Offer nor Poll ever CAS: tail is written only by the producer,
// head only by the consumer. Cross-thread visibility of a published value
// is carried entirely by the release-store/acquire-load pair on the
// owning cell's sequence number. Both operations are wait-free.
type SPSC[T any] struct {
	_    pad
	head atomix.Uint64 // consumer reads from here
	_    pad
	tail atomix.Uint64 // producer writes here
	_    pad
	ring[T]
}

// NewSPSC creates a new SPSC queue. Capacity rounds up to the next power
// of two. Returns ErrInvalidCapacity if capacity is not positive.
func NewSPSC[T any](capacity int) (*SPSC[T], error) {
	r, err := newRing[T](capacity)
	if err != nil {
		return nil, err
	}
	return &SPSC[T]{ring: r}, nil
}

// Offer adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full, ErrInvalidArgument if elem
// is nil.
func (q *SPSC[T]) Offer(elem *T) error {
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
	q.tail.StoreRelaxed(tail + 1)
	return nil
}

// Poll removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Poll() (T, error) {
	head := q.head.LoadRelaxed()
	c := q.at(head)
	if c.loadSeqAcquire() != head+1 {
		var zero T
		return zero, ErrWouldBlock
	}

	v := c.loadValue()
	c.clearValue()
	c.storeSeqRelease(head + q.capacity)
	q.head.StoreRelaxed(head + 1)
	return v, nil
}

// Peek returns the next element without removing it, or
// (zero-value, ErrWouldBlock) if the queue is empty. Best-effort: not a
// synchronization point.
func (q *SPSC[T]) Peek() (T, error) {
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
func (q *SPSC[T]) IsEmpty() bool {
	head := q.head.LoadRelaxed()
	return q.at(head).loadSeqAcquire() != head+1
}

// Size returns an approximate element count, clamped to [0, math.MaxInt32].
func (q *SPSC[T]) Size() int {
	return clampSize(q.tail.LoadAcquire(), q.head.LoadAcquire())
}

// Drain delivers up to max items to cb on the calling goroutine, stopping
// early if the queue becomes empty or cb returns a non-nil error.
// Returns the count of items removed and the first error encountered.
func (q *SPSC[T]) Drain(cb func(T) error, max int) (int, error) {
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
