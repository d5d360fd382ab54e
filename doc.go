// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package varqueue provides bounded, array-backed, lock-free FIFO queues.
//
// Four endpoint variants cover every producer/consumer cardinality:
//
//   - SPSC: Single-Producer Single-Consumer (wait-free both ends)
//   - MPSC: Multi-Producer Single-Consumer (lock-free offer, wait-free poll)
//   - SPMC: Single-Producer Multi-Consumer (wait-free offer, lock-free poll)
//   - MPMC: Multi-Producer Multi-Consumer (lock-free both ends)
//
// All four share one algorithm: a fixed, power-of-two-sized ring of cells,
// each carrying its own sequence number. A producer or consumer claims a
// cell by comparing its cursor against the cell's sequence, publishes or
// consumes the value, then release-stores the next sequence to hand the
// cell to the other side. Only cursors are ever CAS'd; cells never are.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q, err := varqueue.NewSPSC[Event](1024)
//	q, err := varqueue.NewMPMC[*Request](4096)
//
// Builder API selects the algorithm from declared constraints:
//
//	q, err := varqueue.Build[Event](varqueue.New(1024).SingleProducer().SingleConsumer())  // → SPSC
//	q, err := varqueue.Build[Event](varqueue.New(1024).SingleConsumer())                   // → MPSC
//	q, err := varqueue.Build[Event](varqueue.New(1024).SingleProducer())                   // → SPMC
//	q, err := varqueue.Build[Event](varqueue.New(1024))                                    // → MPMC
//
// # Basic Usage
//
// All queues share the same interface for offering and polling:
//
//	q, err := varqueue.NewMPMC[int](1024)
//	if err != nil {
//	    // ErrInvalidCapacity
//	}
//
//	value := 42
//	err = q.Offer(&value)
//	if varqueue.IsWouldBlock(err) {
//	    // queue is full — handle backpressure
//	}
//
//	elem, err := q.Poll()
//	if varqueue.IsWouldBlock(err) {
//	    // queue is empty — try again later
//	}
//
// # Common Patterns
//
// Pipeline Stage (SPSC):
//
//	q, _ := varqueue.NewSPSC[Data](1024)
//
//	go func() { // producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        d := data
//	        for q.Offer(&d) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Poll()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// Event Aggregation (MPSC), Work Distribution (SPMC), and Worker Pool
// (MPMC) follow the same shape with Offer/Poll called from the
// appropriate number of goroutines on each side.
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when an operation cannot proceed
// immediately; this is a control flow signal, not a failure, and is
// sourced from [code.hybscloud.com/iox] for ecosystem consistency.
// [ErrInvalidCapacity] is returned by every constructor for a
// non-positive capacity. [ErrInvalidArgument] is returned by Offer for a
// nil element and by Drain for a nil callback.
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Offer(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !varqueue.IsWouldBlock(err) {
//	        return err // not retryable
//	    }
//	    backoff.Wait()
//	}
//
// # Capacity and Size
//
// Capacity rounds up to the next power of two:
//
//	q, _ := varqueue.NewMPMC[int](3)     // actual capacity: 4
//	q, _ := varqueue.NewMPMC[int](1000)  // actual capacity: 1024
//
// Size is intentionally approximate: an accurate live count in a
// lock-free algorithm requires expensive cross-core synchronization that
// this package does not take on every Offer/Poll.
//
// # Thread Safety
//
// Operations are safe only within their endpoint's declared cardinality.
// Calling Offer from two goroutines on an SPSC queue, for example, is a
// data race: SPSC's Offer takes no lock and no CAS, trusting the caller
// to honor single-producer discipline.
//
// # Draining
//
// SPSC and MPSC additionally implement [Drainer], which repeatedly polls
// on the calling goroutine and delivers each item to a callback. SPMC
// and MPMC do not: a drain loop on one consumer would race every other
// consumer's Poll for the same cells.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channel, WaitGroup) but cannot observe happens-before relationships
// established purely through acquire/release orderings on atomics, which
// is how every queue in this package protects its cell values. The
// detector can report false positives on otherwise-correct lock-free
// code; [RaceEnabled] lets tests skip the scenarios affected by this
// when built with -race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomics with explicit memory ordering,
// and [code.hybscloud.com/spin] for CAS-retry backoff.
package varqueue
