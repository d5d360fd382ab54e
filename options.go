// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

// Options configures queue creation and algorithm selection.
type Options struct {
	singleProducer bool
	singleConsumer bool
	capacity       int
}

// Builder creates queues with fluent configuration.
//
// Builder provides a fluent API for configuring and creating queues. The
// algorithm is selected by the producer/consumer constraints declared on
// it: the zero-value Options (no constraints) selects MPMC.
//
// Example:
//
//	// SPSC queue
//	q, err := varqueue.BuildSPSC[Event](varqueue.New(1024).SingleProducer().SingleConsumer())
//
//	// MPMC queue (default, general purpose)
//	q, err := varqueue.BuildMPMC[Request](varqueue.New(4096))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of two at Build time. For example,
// capacity=4 results in actual capacity=4, capacity=1000 results in
// actual capacity=1024.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will offer.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will poll.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Build creates a Queue[T] with algorithm selection driven by the
// constraints declared on b:
//
//	SingleProducer + SingleConsumer → SPSC
//	SingleProducer only             → SPMC
//	SingleConsumer only             → MPSC
//	Neither                         → MPMC
//
// Returns ErrInvalidCapacity if the builder's capacity is not positive.
//
// For type-safe returns with concrete types, use BuildSPSC, BuildMPSC,
// BuildSPMC, or BuildMPMC instead.
func Build[T any](b *Builder) (Queue[T], error) {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		return NewSPSC[T](b.opts.capacity)
	case b.opts.singleProducer:
		return NewSPMC[T](b.opts.capacity)
	case b.opts.singleConsumer:
		return NewMPSC[T](b.opts.capacity)
	default:
		return NewMPMC[T](b.opts.capacity)
	}
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if b is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) (*SPSC[T], error) {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("varqueue: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildMPSC creates an MPSC queue with compile-time type safety.
// Panics if b is not configured with SingleConsumer() only.
func BuildMPSC[T any](b *Builder) (*MPSC[T], error) {
	if b.opts.singleProducer || !b.opts.singleConsumer {
		panic("varqueue: BuildMPSC requires SingleConsumer() without SingleProducer()")
	}
	return NewMPSC[T](b.opts.capacity)
}

// BuildSPMC creates an SPMC queue with compile-time type safety.
// Panics if b is not configured with SingleProducer() only.
func BuildSPMC[T any](b *Builder) (*SPMC[T], error) {
	if !b.opts.singleProducer || b.opts.singleConsumer {
		panic("varqueue: BuildSPMC requires SingleProducer() without SingleConsumer()")
	}
	return NewSPMC[T](b.opts.capacity)
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Panics if b has any constraints set.
func BuildMPMC[T any](b *Builder) (*MPMC[T], error) {
	if b.opts.singleProducer || b.opts.singleConsumer {
		panic("varqueue: BuildMPMC requires no constraints")
	}
	return NewMPMC[T](b.opts.capacity)
}

// roundToPow2 rounds n up to the next power of two, with a floor of 2.
// Callers have already validated n > 0. A single-slot ring is unusable
// under the sequence-number protocol this package uses: with cap == 1,
// "full at lap k" (seq == i+k+1) and "free for lap k+1"
// (seq == i+(k+1)·cap) are the same value, so a producer racing back onto
// a just-filled slot cannot distinguish it from an empty one and would
// silently overwrite the unconsumed element. Flooring to 2 keeps that
// ambiguity from ever arising.
func roundToPow2(n int) int {
	if n <= 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill a cache line after an 8-byte field.
type padShort [64 - 8]byte
