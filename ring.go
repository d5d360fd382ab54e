// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

import "math"

// ring is the fixed-size, power-of-two-sized cell array shared by every
// endpoint variant. It is immutable after construction: buffer is
// allocated once and never resized, never cleared, never grown.
//
// ring intentionally does not hold head/tail itself: each endpoint
// declares its own padded head/tail fields (one cache line of padding
// before, between and after the two cursors) ahead of an embedded ring.
type ring[T any] struct {
	buffer   []cell[T]
	mask     uint64
	capacity uint64
}

// newRing allocates a ring sized to the next power of two at or above
// requestedCapacity, and seeds cell[i].seq = i for every slot.
//
// Returns ErrInvalidCapacity if requestedCapacity is not positive.
func newRing[T any](requestedCapacity int) (ring[T], error) {
	if requestedCapacity <= 0 {
		return ring[T]{}, ErrInvalidCapacity
	}

	n := uint64(roundToPow2(requestedCapacity))
	r := ring[T]{
		buffer:   make([]cell[T], n),
		mask:     n - 1,
		capacity: n,
	}
	for i := uint64(0); i < n; i++ {
		r.buffer[i].storeSeqRelaxed(i)
	}
	return r, nil
}

// at returns the cell addressed by index, masked into the array.
func (r *ring[T]) at(index uint64) *cell[T] {
	return &r.buffer[index&r.mask]
}

// Capacity returns the fixed, post-rounding capacity.
func (r *ring[T]) Capacity() int {
	return int(r.capacity)
}

// clampSize computes an approximate, saturating element count from a
// tail/head pair read independently (possibly at slightly different
// instants under concurrency). Negative skew clamps to 0; positive skew
// saturates to math.MaxInt32.
func clampSize(tail, head uint64) int {
	diff := int64(tail - head)
	if diff <= 0 {
		return 0
	}
	if diff > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(diff)
}
