// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"

	"github.com/istvandudas/var-queue"
)

func TestSPMCBasic(t *testing.T) {
	q, err := varqueue.NewSPMC[int](3)
	if err != nil {
		t.Fatalf("NewSPMC: %v", err)
	}
	if q.Capacity() != 4 {
		t.Fatalf("Capacity: got %d, want 4", q.Capacity())
	}

	for i := range 4 {
		v := i + 100
		if err := q.Offer(&v); err != nil {
			t.Fatalf("Offer(%d): %v", i, err)
		}
	}

	v := 999
	if err := q.Offer(&v); !errors.Is(err, varqueue.ErrWouldBlock) {
		t.Fatalf("Offer on full: got %v, want ErrWouldBlock", err)
	}

	for i := range 4 {
		val, err := q.Poll()
		if err != nil {
			t.Fatalf("Poll(%d): %v", i, err)
		}
		if val != i+100 {
			t.Fatalf("Poll(%d): got %d, want %d", i, val, i+100)
		}
	}

	if _, err := q.Poll(); !errors.Is(err, varqueue.ErrWouldBlock) {
		t.Fatalf("Poll on empty: got %v, want ErrWouldBlock", err)
	}
}

func TestSPMCOfferNilArgument(t *testing.T) {
	q, _ := varqueue.NewSPMC[int](4)
	if err := q.Offer(nil); !errors.Is(err, varqueue.ErrInvalidArgument) {
		t.Fatalf("Offer(nil): got %v, want ErrInvalidArgument", err)
	}
}

// TestSPMCConcurrentConsumersNoDuplicates verifies every offered value is
// consumed exactly once across competing consumers.
func TestSPMCConcurrentConsumersNoDuplicates(t *testing.T) {
	if varqueue.RaceEnabled {
		t.Skip("skip: concurrent consumer test")
	}

	q, _ := varqueue.NewSPMC[int](2048)
	const (
		numConsumers = 2
		totalItems   = 2000
	)

	var wg sync.WaitGroup
	seen := make([]atomix.Int32, totalItems)
	var consumed atomix.Int64

	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := range totalItems {
			v := i
			for q.Offer(&v) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	for range numConsumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < int64(totalItems) {
				v, err := q.Poll()
				if err == nil {
					seen[v].Add(1)
					consumed.Add(1)
					backoff.Reset()
				} else {
					backoff.Wait()
				}
			}
		}()
	}

	wg.Wait()

	var missing, duplicates int
	for i := range totalItems {
		switch seen[i].Load() {
		case 0:
			missing++
		case 1:
		default:
			duplicates++
		}
	}
	if missing > 0 || duplicates > 0 {
		t.Fatalf("missing=%d duplicates=%d", missing, duplicates)
	}
}
