// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

import "code.hybscloud.com/atomix"

// cell is one slot of a ring: a sequence number paired with a value.
//
// The sequence number is the slot's state. A producer claims the slot by
// observing seq == its tail index, writes value, then release-stores
// seq = tail+1 to publish. A consumer claims it by observing seq == its
// head index + 1, reads value, then release-stores seq = head+capacity to
// free the slot for the next lap.
//
// value accesses are deliberately plain (non-atomic) field accesses: the
// release-store of seq that follows a write, and the acquire-load of seq
// that precedes a read, transitively order the value access on either
// side. No independent synchronization on value is needed or taken.
type cell[T any] struct {
	seq   atomix.Uint64
	value T
	_     padShort
}

// loadSeqAcquire observes the cell's current state.
func (c *cell[T]) loadSeqAcquire() uint64 { return c.seq.LoadAcquire() }

// storeSeqRelease publishes a state transition. Every prior write to value
// in this call becomes visible to any goroutine whose loadSeqAcquire
// observes the new sequence.
func (c *cell[T]) storeSeqRelease(seq uint64) { c.seq.StoreRelease(seq) }

// storeSeqRelaxed initializes the cell at construction time, before any
// concurrent access is possible.
func (c *cell[T]) storeSeqRelaxed(seq uint64) { c.seq.StoreRelaxed(seq) }

// loadValue is an opaque read of the payload.
func (c *cell[T]) loadValue() T { return c.value }

// storeValue is an opaque write of the payload.
func (c *cell[T]) storeValue(v T) { c.value = v }

// clearValue releases any reference the payload holds so the garbage
// collector can reclaim it once the consumer has taken the value out.
func (c *cell[T]) clearValue() {
	var zero T
	c.value = zero
}
