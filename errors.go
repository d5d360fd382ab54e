// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Offer: the queue is full (backpressure). For Poll/Peek: the queue is
// empty (no data available). ErrWouldBlock is a control flow signal, not a
// failure. It never mutates queue state; the caller is expected to retry
// later with its own backoff strategy rather than propagate it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// the rest of the lock-free/non-blocking packages that share it.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Offer(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if varqueue.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err // ErrInvalidArgument or similar — not retryable
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalidCapacity is returned by every constructor when the requested
// capacity is not positive. No queue is created; there is no partial
// construction state to roll back.
var ErrInvalidCapacity = errors.New("varqueue: requested capacity must be positive")

// ErrInvalidArgument is returned by Offer when elem is nil, and by Drain
// when cb is nil. It is reported synchronously, before any cursor is
// touched, so the queue's observable state is unchanged.
var ErrInvalidArgument = errors.New("varqueue: argument must not be nil")

// IsWouldBlock reports whether err indicates the operation would block
// (the queue was full or empty at the moment of the call).
// Delegates to [iox.IsWouldBlock] for wrapped-error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition:
// nil or ErrWouldBlock. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
