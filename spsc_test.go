// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package varqueue_test

import (
	"errors"
	"testing"

	"github.com/istvandudas/var-queue"
)

func TestSPSCBasic(t *testing.T) {
	q, err := varqueue.NewSPSC[int](3)
	if err != nil {
		t.Fatalf("NewSPSC: %v", err)
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

func TestSPSCOfferNilArgument(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](4)
	if err := q.Offer(nil); !errors.Is(err, varqueue.ErrInvalidArgument) {
		t.Fatalf("Offer(nil): got %v, want ErrInvalidArgument", err)
	}
}

func TestSPSCInvalidCapacity(t *testing.T) {
	if _, err := varqueue.NewSPSC[int](0); !errors.Is(err, varqueue.ErrInvalidCapacity) {
		t.Fatalf("NewSPSC(0): got %v, want ErrInvalidCapacity", err)
	}
	if _, err := varqueue.NewSPSC[int](-1); !errors.Is(err, varqueue.ErrInvalidCapacity) {
		t.Fatalf("NewSPSC(-1): got %v, want ErrInvalidCapacity", err)
	}
}

func TestSPSCCapacityOneFloorsToTwo(t *testing.T) {
	q, err := varqueue.NewSPSC[int](1)
	if err != nil {
		t.Fatalf("NewSPSC(1): %v", err)
	}
	if q.Capacity() != 2 {
		t.Fatalf("Capacity: got %d, want 2 (floor)", q.Capacity())
	}

	v := 7
	if err := q.Offer(&v); err != nil {
		t.Fatalf("Offer: %v", err)
	}
	got, err := q.Poll()
	if err != nil || got != 7 {
		t.Fatalf("Poll: got (%d, %v), want (7, nil)", got, err)
	}
	if err := q.Offer(&v); err != nil {
		t.Fatalf("Offer after drain: %v", err)
	}
}

func TestSPSCPeek(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](4)

	if _, err := q.Peek(); !errors.Is(err, varqueue.ErrWouldBlock) {
		t.Fatalf("Peek on empty: got %v, want ErrWouldBlock", err)
	}

	v := 42
	if err := q.Offer(&v); err != nil {
		t.Fatalf("Offer: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := q.Peek()
		if err != nil || got != 42 {
			t.Fatalf("Peek(%d): got (%d, %v), want (42, nil)", i, got, err)
		}
	}

	got, err := q.Poll()
	if err != nil || got != 42 {
		t.Fatalf("Poll: got (%d, %v), want (42, nil)", got, err)
	}
}

func TestSPSCWrapAround(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](4)

	for round := range 10 {
		for i := range 4 {
			v := round*100 + i
			if err := q.Offer(&v); err != nil {
				t.Fatalf("round %d offer %d: %v", round, i, err)
			}
		}
		for i := range 4 {
			val, err := q.Poll()
			if err != nil {
				t.Fatalf("round %d poll %d: %v", round, i, err)
			}
			expected := round*100 + i
			if val != expected {
				t.Fatalf("round %d poll %d: got %d, want %d", round, i, val, expected)
			}
		}
	}
}

func TestSPSCDrain(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](8)
	for i := range 5 {
		v := i
		if err := q.Offer(&v); err != nil {
			t.Fatalf("Offer(%d): %v", i, err)
		}
	}

	var got []int
	n, err := q.Drain(func(v int) error {
		got = append(got, v)
		return nil
	}, 10)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 5 {
		t.Fatalf("Drain count: got %d, want 5", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("Drain order at %d: got %d, want %d", i, v, i)
		}
	}
	if !q.IsEmpty() {
		t.Fatal("queue should be empty after Drain")
	}
}

func TestSPSCDrainStopsOnCallbackError(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](8)
	for i := range 5 {
		v := i
		q.Offer(&v)
	}

	boom := errors.New("boom")
	n, err := q.Drain(func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	}, 10)
	if !errors.Is(err, boom) {
		t.Fatalf("Drain error: got %v, want boom", err)
	}
	if n != 3 {
		t.Fatalf("Drain count before error: got %d, want 3", n)
	}
}

func TestSPSCDrainNilCallback(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](4)
	if _, err := q.Drain(nil, 1); !errors.Is(err, varqueue.ErrInvalidArgument) {
		t.Fatalf("Drain(nil): got %v, want ErrInvalidArgument", err)
	}
}

func TestSPSCDrainNonPositiveMax(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](4)
	v := 1
	q.Offer(&v)
	for _, max := range []int{0, -1} {
		if _, err := q.Drain(func(int) error { return nil }, max); !errors.Is(err, varqueue.ErrInvalidArgument) {
			t.Fatalf("Drain(max=%d): got %v, want ErrInvalidArgument", max, err)
		}
	}
}

func TestSPSCSize(t *testing.T) {
	q, _ := varqueue.NewSPSC[int](8)
	if q.Size() != 0 {
		t.Fatalf("initial Size: got %d, want 0", q.Size())
	}
	for i := range 5 {
		v := i
		q.Offer(&v)
	}
	if q.Size() != 5 {
		t.Fatalf("Size after 5 offers: got %d, want 5", q.Size())
	}
	q.Poll()
	if q.Size() != 4 {
		t.Fatalf("Size after 1 poll: got %d, want 4", q.Size())
	}
}
