package input

import (
	"sync"
	"testing"
)

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue(0)
	q.Push(PointerDown())
	q.Push(PointerMove(10, 10))
	q.Push(PointerMove(30, 40))

	n := NewNormalizer()
	s, down := q.DrainInto(n, 100, 100)
	if !down {
		t.Fatal("press lost while folding")
	}
	if s.X != 30 || s.Y != 40 || s.DeltaX != -20 || s.DeltaY != -30 {
		t.Fatalf("state after fold = %+v", s)
	}
	if ev := q.Drain(); ev != nil {
		t.Fatalf("queue not empty after fold: %v", ev)
	}
}

func TestQueueDrainEmpty(t *testing.T) {
	q := NewQueue(0)
	if ev := q.Drain(); ev != nil {
		t.Fatalf("Drain on empty queue = %v", ev)
	}

	n := NewNormalizer()
	n.Apply(PointerMove(5, 5), 10, 10)
	s, _ := q.DrainInto(n, 10, 10)
	if s.X != 5 {
		t.Fatalf("empty drain changed state: %+v", s)
	}
}

func TestQueueLimitDropsMovesOnly(t *testing.T) {
	q := NewQueue(2)
	q.Push(PointerDown())
	q.Push(PointerMove(1, 1))
	q.Push(PointerMove(2, 2))

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Kind != EventPointerDown || events[1].X != 2 {
		t.Fatalf("unexpected events after drop: %+v", events)
	}
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(PointerMove(float32(j), float32(j)))
			}
		}()
	}
	wg.Wait()
	if n := len(q.Drain()); n != 800 {
		t.Fatalf("drained %d events, want 800", n)
	}
}
