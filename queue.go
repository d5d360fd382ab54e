// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

// Queue is the uniform contract every endpoint variant satisfies.
//
// Queue provides non-blocking Offer and Poll, plus the observer operations
// Peek, IsEmpty, Size, and Capacity. None of these ever block or park; a
// full Offer or an empty Poll/Peek returns immediately with ErrWouldBlock.
//
// The interface intentionally excludes a length/clear/iteration API beyond
// Size: accurate counts in lock-free algorithms require expensive
// cross-core synchronization, Size is explicitly approximate, and there is
// no reset operation — a queue's lifetime ends only when it is collected.
//
// Example:
//
//	q, _ := varqueue.NewMPMC[int](1024)
//
//	val := 42
//	if err := q.Offer(&val); err != nil {
//	    // ErrWouldBlock: full. ErrInvalidArgument: val was nil (impossible here).
//	}
//
//	elem, err := q.Poll()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Observer[T]
}

// Producer is the interface for offering elements to a queue.
type Producer[T any] interface {
	// Offer adds an element to the queue (non-blocking).
	// The pointed-to value is copied into the queue's internal buffer; the
	// caller may modify or discard elem after Offer returns.
	//
	// Returns nil on success, ErrWouldBlock if the queue is full, or
	// ErrInvalidArgument if elem is nil. The latter two never mutate state.
	//
	// Thread safety depends on the endpoint:
	//   - SPSC, SPMC: single producer only
	//   - MPSC, MPMC: multiple producers safe
	Offer(elem *T) error
}

// Consumer is the interface for removing elements from a queue.
type Consumer[T any] interface {
	// Poll removes and returns an element from the queue (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	//
	// Thread safety depends on the endpoint:
	//   - SPSC, MPSC: single consumer only
	//   - SPMC, MPMC: multiple consumers safe
	Poll() (T, error)
}

// Observer is the interface for inspecting a queue without mutating it.
//
// Peek and IsEmpty are best-effort: under concurrent access their result
// may already be stale by the time the caller observes it. They are not a
// synchronization point and must not be treated as one.
type Observer[T any] interface {
	// Peek returns the next element without removing it, or
	// (zero-value, ErrWouldBlock) if the queue is empty.
	Peek() (T, error)

	// IsEmpty reports whether the queue had no ready element at the
	// moment of the call.
	IsEmpty() bool

	// Size returns an approximate element count, clamped to
	// [0, math.MaxInt32]. Never exceeds Capacity by more than a
	// momentary concurrent read skew.
	Size() int

	// Capacity returns the fixed, post-rounding capacity.
	Capacity() int
}

// Drainer is implemented by the single-consumer endpoints (SPSC, MPSC).
//
// Drain repeats the poll sequence in a tight loop on the calling
// goroutine, invoking cb synchronously for each item removed, until the
// queue is empty or max items have been drained.
//
// The callback runs while the consumer has already advanced its cursor
// past the delivered element: if cb returns an error, Drain stops and
// returns that error alongside the count of items removed so far, which
// includes the item whose callback failed. That element has already been removed
// from the queue — Drain never rolls back.
//
// Drain is not exposed by SPMC or MPMC: a multi-consumer drain loop would
// race every other consumer's Poll for the same cells, defeating the
// purpose of draining as a single logical operation on one consumer.
type Drainer[T any] interface {
	// Drain delivers up to max items to cb, stopping early if the queue
	// becomes empty or cb returns a non-nil error.
	// Returns the count of items drained and the first error encountered
	// (from cb, or ErrInvalidArgument if cb is nil or max is not positive).
	Drain(cb func(T) error, max int) (int, error)
}
